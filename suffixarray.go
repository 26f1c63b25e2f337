package suffixtree

// frame is a pending node of an iterative traversal together with the
// length of the path from the root to the end of its edge.
type frame struct {
	node  int32
	depth int32
}

// SuffixArray returns the starting offsets of all suffixes in lexicographic order.
// Terminators sort before letters. The result has Len() entries.
func (t *Tree) SuffixArray() []int {
	sa := make([]int, 0, t.Len())
	t.walkLeaves(root, 0, func(offset int) {
		sa = append(sa, offset)
	})
	return sa
}

// walkLeaves calls fn with the suffix offset of every leaf below n, in
// lexicographic order. depth is the path length from the root to the end of n's edge.
// The traversal keeps its own stack, so deep trees are fine.
func (t *Tree) walkLeaves(n, depth int32, fn func(offset int)) {
	total := int32(len(t.text))
	stack := []frame{{node: n, depth: depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.isLeaf(f.node) {
			offset := total - f.depth
			if t.implicit && offset == total-1 {
				continue
			}
			fn(int(offset))
			continue
		}

		// Push in reverse so the lowest symbol id is popped first.
		children := &t.nodes[f.node].children
		for id := alphabetSize - 1; id >= 0; id-- {
			c := children[id]
			if c == none {
				continue
			}
			stack = append(stack, frame{node: c, depth: f.depth + t.edgeLength(c)})
		}
	}
}
