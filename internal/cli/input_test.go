package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/t9serve/pkg/t9"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func runInput(t *testing.T, d *t9.Dictionary, input string) string {
	t.Helper()
	var out bytes.Buffer
	h := NewInputHandlerWithIO(d, 10, strings.NewReader(input), &out)
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return out.String()
}

func TestInputCommands(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"keys", "27\n", []string{"Found 2 candidates for keys '27'", "1. ap", "2. ar"}},
		{"deep keys", "27753\n", []string{"apple *"}},
		{"unknown keys", "9\n", []string{"No candidates for keys: '9'"}},
		{"learn", "+arrow\n?ar\n", []string{"learned: arrow", "1 words:", "  arrow"}},
		{"learn bad word", "+t9\n", []string{"Cannot learn \"t9\""}},
		{"no words", "?z\n", []string{"No words start with 'z'"}},
		{"cycle", "2\n:next\n", []string{"selected: a"}},
		{"cycle empty", ":next\n", []string{"nothing to select"}},
		{"stats", ":stats\n", []string{"distinctWords", "maxDepth"}},
		{"dump", ":dump\n", []string{"2: a", "    7: ap"}},
		{"unknown", "hello\n", []string{"Unknown input"}},
		{"help", ":help\n", []string{"commands:"}},
		{"no trailing newline", "27", []string{"Found 2 candidates"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := t9.New()
			for _, w := range []string{"apple", "arrow", "apple"} {
				if err := d.Insert(w); err != nil {
					t.Fatal(err)
				}
			}
			got := runInput(t, d, tc.input)
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("output for %q missing %q:\n%s", tc.input, want, got)
				}
			}
		})
	}
}

func TestInputLimit(t *testing.T) {
	d := t9.New()
	for _, w := range []string{"ad", "ae", "af"} {
		if err := d.Insert(w); err != nil {
			t.Fatal(err)
		}
	}
	var out bytes.Buffer
	h := NewInputHandlerWithIO(d, 2, strings.NewReader("23\n"), &out)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.Contains(got, "Found 2 candidates") || strings.Contains(got, "3. ") {
		t.Errorf("limit not applied:\n%s", got)
	}
}
