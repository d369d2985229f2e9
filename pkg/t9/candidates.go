package t9

// Candidates is the ordered list of fragments stored at a trie node.
// The most recently reinforced fragment comes first and no value appears twice.
type Candidates []string

// Reinforce records that fragment was typed again and returns the updated list.
//
// A fragment already in the list moves to the front, every other entry keeps
// its relative order. A new fragment is appended at the end. The backing array
// of list is reused, so callers must keep only the returned slice.
func Reinforce(list Candidates, fragment string) Candidates {
	if len(list) == 0 {
		return append(list, fragment)
	}
	last := len(list) - 1
	for i := 0; i < last; i++ {
		if list[i] == fragment {
			return moveToFront(list, i)
		}
	}
	if list[last] == fragment {
		return moveToFront(list, last)
	}
	return append(list, fragment)
}

func moveToFront(list Candidates, i int) Candidates {
	fragment := list[i]
	copy(list[1:i+1], list[:i])
	list[0] = fragment
	return list
}

// Contains reports whether fragment is in the list.
func (c Candidates) Contains(fragment string) bool {
	for _, s := range c {
		if s == fragment {
			return true
		}
	}
	return false
}

// First returns the leading candidate, or "" for an empty list.
func (c Candidates) First() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}
