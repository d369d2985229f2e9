package t9

import (
	"slices"
	"testing"

	"github.com/bastiangx/t9serve/pkg/keypad"
)

func TestSessionTyping(t *testing.T) {
	d := New()
	mustInsert(t, d, "apple", "arrow")
	s := NewSession(d)

	steps := []struct {
		key  keypad.Digit
		want Candidates
	}{
		{2, Candidates{"a"}},
		{7, Candidates{"ap", "ar"}},
		{7, Candidates{"app", "arr"}},
		{6, Candidates{"arro"}},
		{9, Candidates{"arrow"}},
		{9, Candidates{"arrow"}},
	}
	for i, step := range steps {
		if got := s.Press(step.key); !slices.Equal(got, step.want) {
			t.Fatalf("step %d: Press(%v) = %v; want %v", i, step.key, got, step.want)
		}
	}
	if got := keypad.FormatKeys(s.Keys()); got != "277699" {
		t.Errorf("Keys() = %s", got)
	}

	if got := s.Backspace(); !slices.Equal(got, Candidates{"arrow"}) {
		t.Errorf("Backspace() = %v", got)
	}
	s.Backspace()
	if got := s.Backspace(); !slices.Equal(got, Candidates{"app", "arr"}) {
		t.Errorf("Backspace() = %v; want [app arr]", got)
	}
	if got := s.Current(); got != "app" {
		t.Errorf("Current() = %q; want app", got)
	}
	if got := s.Cycle(); got != "arr" {
		t.Errorf("Cycle() = %q; want arr", got)
	}
	if got := s.Cycle(); got != "app" {
		t.Errorf("Cycle() wrap = %q; want app", got)
	}
}

func TestSessionBackspaceToEmpty(t *testing.T) {
	s := NewSession(New())
	if got := s.Backspace(); got != nil {
		t.Errorf("Backspace on empty session = %v", got)
	}
	s.Press(2)
	if got := s.Backspace(); got != nil {
		t.Errorf("Backspace to empty = %v; want nil", got)
	}
	if s.Current() != "" || s.Cycle() != "" {
		t.Error("empty session must have no selection")
	}
}

func TestSessionConfirmLearnsWord(t *testing.T) {
	d := New()
	s := NewSession(d)
	for _, k := range keys(t, "843") {
		s.Press(k)
	}
	if got := s.Candidates(); got != nil {
		t.Fatalf("unknown word has candidates %v", got)
	}

	if err := s.Confirm("the"); err != nil {
		t.Fatalf("Confirm(the): %v", err)
	}
	if len(s.Keys()) != 0 {
		t.Errorf("Confirm did not clear keys")
	}
	if !d.IsWord("the") {
		t.Fatal("confirmed word not learned")
	}

	for _, k := range keys(t, "843") {
		s.Press(k)
	}
	if got := s.Current(); got != "the" {
		t.Errorf("Current() = %q; want the", got)
	}
	if err := s.Confirm(""); err != nil {
		t.Fatalf("Confirm(\"\"): %v", err)
	}
	if got := d.WordCount("the"); got != 2 {
		t.Errorf("WordCount(the) = %d; want 2", got)
	}

	if err := s.Confirm(""); err != nil {
		t.Errorf("Confirm on empty session: %v", err)
	}
	if err := s.Confirm("t9"); err == nil {
		t.Error("Confirm(t9) should fail")
	}
}

func TestSessionClear(t *testing.T) {
	d := New()
	mustInsert(t, d, "go")
	s := NewSession(d)
	s.Press(4)
	s.Press(6)
	s.Clear()
	if len(s.Keys()) != 0 || s.Candidates() != nil || s.Current() != "" {
		t.Error("Clear left state behind")
	}
	if d.Stats()["insertedWords"] != 1 {
		t.Error("Clear must not insert")
	}
}
