package suffixtree

import (
	"errors"
	"fmt"
)

var (
	ErrBadBoundary = errors.New("suffixtree: boundary does not follow the first text's terminator")
)

// Generalized answers longest common prefix queries between suffixes of two
// texts A and B indexed by one suffix tree over A, a terminator, B and a
// second terminator.
type Generalized struct {
	tree     *Tree
	boundary int
	lenA     int
	lenB     int
}

// NewGeneralized wraps a tree built over the concatenation of two terminated texts.
// boundary is the offset where the second text starts, that is len(A)+1.
func NewGeneralized(tree *Tree, boundary int) (*Generalized, error) {
	n := len(tree.text)
	if tree.implicit || boundary <= 0 || boundary >= n || !isTerminator(tree.text[boundary-1]) {
		return nil, fmt.Errorf("%w: boundary %d in text of length %d", ErrBadBoundary, boundary, n)
	}
	return &Generalized{
		tree:     tree,
		boundary: boundary,
		lenA:     boundary - 1,
		lenB:     n - boundary - 1,
	}, nil
}

// BuildGeneralized builds the generalized tree of a and b, joined as a + "$" + b + "#".
func BuildGeneralized(a, b []byte) (*Generalized, error) {
	text := make([]byte, 0, len(a)+len(b)+2)
	text = append(text, a...)
	text = append(text, Terminator)
	text = append(text, b...)
	text = append(text, Separator)

	tree, err := Build(text)
	if err != nil {
		return nil, err
	}
	return NewGeneralized(tree, len(a)+1)
}

// Tree returns the underlying tree.
func (g *Generalized) Tree() *Tree {
	return g.tree
}

// LenA returns the length of the first text.
func (g *Generalized) LenA() int {
	return g.lenA
}

// LenB returns the length of the second text.
func (g *Generalized) LenB() int {
	return g.lenB
}

// LCP returns the length of the longest common prefix of A[i:] and B[j:].
// Offsets outside [0, LenA()) and [0, LenB()) yield 0.
func (g *Generalized) LCP(i, j int) int {
	if i < 0 || i >= g.lenA || j < 0 || j >= g.lenB {
		return 0
	}

	t := g.tree
	a, b := int32(i), int32(j+g.boundary)
	lcp := int32(0)
	n := root
	for {
		id := t.text[a+lcp]
		if id != t.text[b+lcp] {
			return int(lcp)
		}

		// Two distinct suffixes sharing a child edge both run through all of it,
		// unless the edge is a leaf, which only one of them can own.
		c := t.child(n, id)
		if t.isLeaf(c) {
			return int(lcp + t.compare(a+lcp, b+lcp))
		}
		lcp += t.edgeLength(c)
		n = c
	}
}

// compare counts matching symbols from offsets a and b.
func (t *Tree) compare(a, b int32) int32 {
	total := int32(len(t.text))
	k := int32(0)
	for a+k < total && b+k < total && t.text[a+k] == t.text[b+k] {
		k++
	}
	return k
}
