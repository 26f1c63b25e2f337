package suffixtree

import "slices"

// locate follows pattern from the root. It returns the node whose edge the
// pattern ends on and the depth at the end of that edge.
// An implicitly appended terminator never matches.
func (t *Tree) locate(pattern []byte) (n, depth int32, ok bool) {
	for _, c := range pattern {
		if id := symbolID(c); id < 0 || (t.implicit && id == 0) {
			return none, 0, false
		}
	}

	n = root
	matched := 0
	for matched < len(pattern) {
		c := t.child(n, uint8(symbolID(pattern[matched])))
		if c == none {
			return none, 0, false
		}

		start, length := t.nodes[c].start, t.edgeLength(c)
		for k := int32(0); k < length && matched < len(pattern); k++ {
			if symbolID(pattern[matched]) != int(t.text[start+k]) {
				return none, 0, false
			}
			matched++
		}
		n = c
		depth += length
	}
	return n, depth, true
}

// Contains reports whether pattern occurs in the text.
func (t *Tree) Contains(pattern []byte) bool {
	_, _, ok := t.locate(pattern)
	return ok
}

// Find returns every offset at which pattern occurs, in ascending order.
// The empty pattern occurs at every offset.
func (t *Tree) Find(pattern []byte) []int {
	n, depth, ok := t.locate(pattern)
	if !ok {
		return nil
	}
	var offsets []int
	t.walkLeaves(n, depth, func(offset int) {
		offsets = append(offsets, offset)
	})
	slices.Sort(offsets)
	return offsets
}

// Count returns the number of occurrences of pattern.
func (t *Tree) Count(pattern []byte) int {
	n, depth, ok := t.locate(pattern)
	if !ok {
		return 0
	}
	count := 0
	t.walkLeaves(n, depth, func(int) {
		count++
	})
	return count
}
