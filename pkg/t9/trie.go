package t9

import (
	"strings"

	"github.com/bastiangx/t9serve/pkg/keypad"
)

// nodeID is a handle into trie.nodes. The root is always 0, so a zero entry
// in a child table means "no child".
type nodeID int32

const rootID nodeID = 0

type node struct {
	digit      keypad.Digit
	candidates Candidates
	children   [keypad.KeyCount]nodeID
}

// trie is an append-only arena of keystroke nodes.
type trie struct {
	nodes    []node
	maxDepth int
}

func newTrie() *trie {
	return &trie{
		nodes: []node{{digit: keypad.NoDigit}},
	}
}

// child returns the child of id reached by pressing d.
func (t *trie) child(id nodeID, d keypad.Digit) (nodeID, bool) {
	if !d.Valid() {
		return 0, false
	}
	c := t.nodes[id].children[d-keypad.MinDigit]
	return c, c != rootID
}

// childOrCreate returns the child of id for d, attaching an empty one first
// if it does not exist yet. d must be a valid key.
func (t *trie) childOrCreate(id nodeID, d keypad.Digit) nodeID {
	if c, ok := t.child(id, d); ok {
		return c
	}
	c := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{digit: d})
	t.nodes[id].children[d-keypad.MinDigit] = c
	return c
}

// walk visits every node depth first, children in key order.
func (t *trie) walk(fn func(id nodeID, depth int)) {
	var visit func(id nodeID, depth int)
	visit = func(id nodeID, depth int) {
		fn(id, depth)
		for _, c := range t.nodes[id].children {
			if c != rootID {
				visit(c, depth+1)
			}
		}
	}
	visit(rootID, 0)
}

func (t *trie) String() string {
	var b strings.Builder
	t.walk(func(id nodeID, depth int) {
		n := &t.nodes[id]
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.digit.String())
		b.WriteByte(':')
		for _, s := range n.candidates {
			b.WriteByte(' ')
			b.WriteString(s)
		}
		b.WriteByte('\n')
	})
	return b.String()
}
