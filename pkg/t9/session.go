package t9

import (
	"slices"

	"github.com/bastiangx/t9serve/pkg/keypad"
	"github.com/charmbracelet/log"
)

// Session follows one user typing on the keypad. Every key press re-runs the
// lookup for the keys typed so far.
type Session struct {
	dict       Predictor
	keys       []keypad.Digit
	candidates Candidates
	selected   int
}

// NewSession starts an empty session on top of dict.
func NewSession(dict Predictor) *Session {
	return &Session{dict: dict}
}

// Press appends a key and returns the candidates for the whole sequence.
func (s *Session) Press(d keypad.Digit) Candidates {
	s.keys = append(s.keys, d)
	return s.refresh()
}

// Backspace drops the last key. With no keys left the candidates are nil.
func (s *Session) Backspace() Candidates {
	if len(s.keys) == 0 {
		return nil
	}
	s.keys = s.keys[:len(s.keys)-1]
	return s.refresh()
}

func (s *Session) refresh() Candidates {
	s.selected = 0
	if len(s.keys) == 0 {
		s.candidates = nil
		return nil
	}
	s.candidates = s.dict.Lookup(s.keys)
	log.Debug("Session lookup", "keys", keypad.FormatKeys(s.keys), "candidates", len(s.candidates))
	return slices.Clone(s.candidates)
}

// Keys returns a copy of the keys typed so far.
func (s *Session) Keys() []keypad.Digit {
	return slices.Clone(s.keys)
}

// Candidates returns the current candidate list.
func (s *Session) Candidates() Candidates {
	return slices.Clone(s.candidates)
}

// Current returns the selected candidate, or "" when there is none.
func (s *Session) Current() string {
	if len(s.candidates) == 0 {
		return ""
	}
	return s.candidates[s.selected]
}

// Cycle moves the selection to the next candidate, wrapping around.
func (s *Session) Cycle() string {
	if len(s.candidates) == 0 {
		return ""
	}
	s.selected = (s.selected + 1) % len(s.candidates)
	return s.candidates[s.selected]
}

// Confirm inserts word, or the current selection when word is empty, and
// clears the session. Nothing is inserted when there is nothing to confirm.
func (s *Session) Confirm(word string) error {
	if word == "" {
		word = s.Current()
	}
	s.Clear()
	if word == "" {
		return nil
	}
	return s.dict.Insert(word)
}

// Clear resets the session without inserting anything.
func (s *Session) Clear() {
	s.keys = s.keys[:0]
	s.candidates = nil
	s.selected = 0
}
