package t9

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// vocabulary keeps every complete word that went through Insert, with the
// number of times it was inserted.
type vocabulary struct {
	trie *patricia.Trie
	size int
}

func newVocabulary() *vocabulary {
	return &vocabulary{trie: patricia.NewTrie()}
}

func (v *vocabulary) add(word string) {
	key := patricia.Prefix(word)
	if item := v.trie.Get(key); item != nil {
		v.trie.Set(key, item.(int)+1)
		return
	}
	v.trie.Insert(key, 1)
	v.size++
}

func (v *vocabulary) count(word string) int {
	if item := v.trie.Get(patricia.Prefix(word)); item != nil {
		return item.(int)
	}
	return 0
}

func (v *vocabulary) contains(word string) bool {
	return v.trie.Match(patricia.Prefix(word))
}

// withPrefix returns known words starting with prefix in lexical order.
// limit <= 0 returns all of them.
func (v *vocabulary) withPrefix(prefix string, limit int) []string {
	var words []string
	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		if item != nil {
			words = append(words, string(p))
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return nil
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
