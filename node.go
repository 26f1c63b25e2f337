package suffixtree

const (
	// none marks an empty child slot.
	none int32 = -1
	// openEnd marks a leaf whose end follows the tree's current phase.
	openEnd int32 = -2
	// root is always the first node of the arena.
	root int32 = 0
)

// node is the edge from its parent to itself plus its children.
// The edge is labeled text[start..end], both inclusive.
// Children and suffix links are arena indices, never owning references.
type node struct {
	start, end int32
	link       int32
	children   [alphabetSize]int32
}

// newNode appends a node to the arena, linked to the root by default.
func (t *Tree) newNode(start, end int32) int32 {
	n := node{start: start, end: end, link: root}
	for i := range n.children {
		n.children[i] = none
	}
	t.nodes = append(t.nodes, n)
	if end == openEnd {
		t.leaves++
	}
	return int32(len(t.nodes) - 1)
}

func (t *Tree) isLeaf(n int32) bool {
	return t.nodes[n].end == openEnd
}

// resolvedEnd dereferences the shared end for open leaves.
func (t *Tree) resolvedEnd(n int32) int32 {
	if end := t.nodes[n].end; end != openEnd {
		return end
	}
	return t.end
}

func (t *Tree) edgeLength(n int32) int32 {
	return t.resolvedEnd(n) - t.nodes[n].start + 1
}

func (t *Tree) child(n int32, id uint8) int32 {
	return t.nodes[n].children[id]
}

// addChild fills an empty slot. Filling a taken slot is a bug in the builder.
func (t *Tree) addChild(parent int32, id uint8, c int32) {
	if t.nodes[parent].children[id] != none {
		panic("suffixtree: child slot already taken")
	}
	t.nodes[parent].children[id] = c
}

// setChild replaces the child in a slot, used when an edge is split.
func (t *Tree) setChild(parent int32, id uint8, c int32) {
	t.nodes[parent].children[id] = c
}
