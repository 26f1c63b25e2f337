package suffixtree

// Tree is a suffix tree built with Ukkonen's algorithm.
// It is immutable once Build returns and safe for concurrent readers.
type Tree struct {
	// text holds symbol ids, including an implicitly appended terminator.
	text  []uint8
	nodes []node
	// end is the index of the current phase. Every open leaf ends here.
	end      int32
	leaves   int
	implicit bool
}

// builder carries the state that only exists while a tree is constructed.
type builder struct {
	t *Tree

	activeNode   int32
	activeEdge   int32
	activeLength int32

	// pending is the first suffix not yet explicitly in the tree.
	pending int32
	// lastInternal is the node created by a split in this phase still waiting for its suffix link.
	lastInternal int32
}

// Build constructs the suffix tree of text in linear time.
//
// Text is made of 'a'..'z' plus the terminators '$' and '#'. Each terminator may occur
// at most once, and a text holding one must end with one. A text without terminators
// gets '$' appended; that suffix is a leaf of the tree but is left out of every result.
func Build(text []byte) (*Tree, error) {
	ids, implicit, err := encode(text)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		text:     ids,
		nodes:    make([]node, 0, 2*len(ids)+1),
		end:      -1,
		implicit: implicit,
	}
	t.newNode(-1, -1)

	b := &builder{t: t, activeNode: root, activeEdge: -1}
	for i := range ids {
		b.extend(int32(i))
	}
	return t, nil
}

// MustBuild is like Build but panics if text is rejected.
func MustBuild(text string) *Tree {
	t, err := Build([]byte(text))
	if err != nil {
		panic(err)
	}
	return t
}

// extend runs phase i: every pending suffix is extended by text[i] until one
// of them is already present.
func (b *builder) extend(i int32) {
	t := b.t
	b.lastInternal = none
	t.end = i

	for b.pending <= i {
		if b.activeLength == 0 {
			b.activeEdge = i
		}

		edge := t.text[b.activeEdge]
		next := t.child(b.activeNode, edge)
		if next == none {
			t.addChild(b.activeNode, edge, t.newNode(i, openEnd))
			if b.lastInternal != none {
				t.nodes[b.lastInternal].link = b.activeNode
				b.lastInternal = none
			}
		} else {
			if b.walkDown(next) {
				continue
			}

			if t.text[i] == t.text[t.nodes[next].start+b.activeLength] {
				if b.lastInternal != none && b.activeNode != root {
					t.nodes[b.lastInternal].link = b.activeNode
					b.lastInternal = none
				}
				b.activeLength++
				return
			}

			b.split(next, i)
		}

		b.pending++
		if b.activeNode == root && b.activeLength > 0 {
			b.activeEdge = b.pending
			b.activeLength--
		} else {
			b.activeNode = t.nodes[b.activeNode].link
		}
	}
}

// walkDown moves the active point to next when the active length covers the whole edge.
func (b *builder) walkDown(next int32) bool {
	length := b.t.edgeLength(next)
	if b.activeLength < length {
		return false
	}
	b.activeNode = next
	b.activeEdge += length
	b.activeLength -= length
	return true
}

// split inserts an internal node activeLength symbols into the edge leading to next
// and hangs a new leaf for text[i] under it.
func (b *builder) split(next, i int32) {
	t := b.t
	start := t.nodes[next].start

	mid := t.newNode(start, start+b.activeLength-1)
	t.setChild(b.activeNode, t.text[start], mid)

	t.nodes[next].start += b.activeLength
	t.addChild(mid, t.text[t.nodes[next].start], next)
	t.addChild(mid, t.text[i], t.newNode(i, openEnd))

	if b.lastInternal != none {
		t.nodes[b.lastInternal].link = mid
	}
	b.lastInternal = mid
}

// Len returns the length of the text the tree was built from, without an
// implicitly appended terminator.
func (t *Tree) Len() int {
	if t.implicit {
		return len(t.text) - 1
	}
	return len(t.text)
}

// Leaves returns the number of leaves, one per suffix of the terminated text.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Nodes returns the number of nodes including the root.
func (t *Tree) Nodes() int {
	return len(t.nodes)
}

// Implicit reports whether Build appended the terminator itself.
func (t *Tree) Implicit() bool {
	return t.implicit
}

// Text returns the terminated text the tree indexes.
func (t *Tree) Text() []byte {
	out := make([]byte, len(t.text))
	for i, id := range t.text {
		out[i] = symbolByte(id)
	}
	return out
}

func symbolByte(id uint8) byte {
	switch id {
	case 0:
		return Terminator
	case 1:
		return Separator
	}
	return 'a' + id - numTerminators
}
