// Package t9 is the core of the predictive keypad: a trie indexed by key
// presses whose nodes keep the word fragments typed along that path, ordered
// by how recently they were typed.
package t9

import "github.com/bastiangx/t9serve/pkg/keypad"

// Predictor is what the CLI, the server and a Session need from a dictionary.
type Predictor interface {
	// Insert adds a complete lowercase word.
	Insert(word string) error

	// Lookup resolves a key sequence to the best known candidate list.
	Lookup(keys []keypad.Digit) Candidates

	// Suggest is Lookup with ranks and complete-word flags, capped at limit.
	Suggest(keys []keypad.Digit, limit int) []Suggestion

	// Words lists complete words starting with a letter prefix.
	Words(prefix string, limit int) []string

	// Stats returns counters about the loaded dictionary.
	Stats() map[string]int
}

var _ Predictor = (*Dictionary)(nil)
