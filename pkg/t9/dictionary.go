package t9

import (
	"slices"
	"sync"

	"github.com/bastiangx/t9serve/internal/utils"
	"github.com/bastiangx/t9serve/pkg/keypad"
	"github.com/charmbracelet/log"
)

// Suggestion is a candidate fragment as shown to a user.
type Suggestion struct {
	Fragment string
	// Rank is the 1-based position in the candidate list.
	Rank uint16
	// Word is set when the fragment is a complete word that was inserted.
	Word bool
}

// Dictionary maps keystroke sequences to the fragments that could have
// produced them. Lookups may run concurrently, inserts are serialized.
type Dictionary struct {
	mu       sync.RWMutex
	trie     *trie
	vocab    *vocabulary
	inserted int
	rejected int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		trie:  newTrie(),
		vocab: newVocabulary(),
	}
}

// Insert adds word to the dictionary. Each prefix of the word is reinforced at
// the node reached by its key sequence, creating nodes as needed.
//
// A word containing a character with no key is rejected with an
// *keypad.UnknownCharacterError before any node is touched.
func (d *Dictionary) Insert(word string) error {
	if word == "" {
		return nil
	}
	keys, err := keypad.Encode(word)
	if err != nil {
		d.mu.Lock()
		d.rejected++
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := rootID
	for i, k := range keys {
		id = d.trie.childOrCreate(id, k)
		n := &d.trie.nodes[id]
		// every letter is a single byte once Encode succeeded
		n.candidates = Reinforce(n.candidates, word[:i+1])
	}
	if len(keys) > d.trie.maxDepth {
		d.trie.maxDepth = len(keys)
	}
	d.vocab.add(word)
	d.inserted++
	return nil
}

// Lookup returns the candidates for the deepest node reachable along keys.
// Keys past the end of the known paths are ignored, so typing beyond a known
// word keeps the last useful list. It returns nil when even the first key has
// no node, or when keys is empty.
func (d *Dictionary) Lookup(keys []keypad.Digit) Candidates {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var best Candidates
	id := rootID
	for _, k := range keys {
		next, ok := d.trie.child(id, k)
		if !ok {
			break
		}
		id = next
		best = d.trie.nodes[id].candidates
	}
	return slices.Clone(best)
}

// Suggest runs Lookup and decorates the result. limit <= 0 returns everything.
func (d *Dictionary) Suggest(keys []keypad.Digit, limit int) []Suggestion {
	candidates := d.Lookup(keys)
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	ranks := utils.CreateRankList(len(candidates))
	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion{
			Fragment: c,
			Rank:     ranks[i],
			Word:     d.vocab.contains(c),
		}
	}
	return suggestions
}

// IsWord reports whether word was inserted as a complete word.
func (d *Dictionary) IsWord(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.vocab.contains(word)
}

// WordCount returns how many times word was inserted.
func (d *Dictionary) WordCount(word string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.vocab.count(word)
}

// Len returns the number of distinct complete words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.vocab.size
}

// Words lists complete words starting with the letter prefix.
func (d *Dictionary) Words(prefix string, limit int) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.vocab.withPrefix(prefix, limit)
}

// Stats returns counters describing the dictionary.
func (d *Dictionary) Stats() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := map[string]int{
		"nodes":         len(d.trie.nodes),
		"maxDepth":      d.trie.maxDepth,
		"insertedWords": d.inserted,
		"distinctWords": d.vocab.size,
		"rejectedWords": d.rejected,
	}
	log.Debug("Dictionary stats", "nodes", stats["nodes"], "words", stats["distinctWords"])
	return stats
}

// String dumps the trie, one node per line as "digit: fragments".
func (d *Dictionary) String() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.String()
}
