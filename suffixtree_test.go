package suffixtree

import (
	"errors"
	"math/rand"
	"slices"
	"sort"
	"strings"
	"testing"
)

func ids(t *testing.T, text string) []uint8 {
	t.Helper()
	out := make([]uint8, len(text))
	for i := range text {
		id := symbolID(text[i])
		if id < 0 {
			t.Fatalf("bad symbol %q in test text", text[i])
		}
		out[i] = uint8(id)
	}
	return out
}

// naiveSuffixArray sorts the suffixes of text by symbol id.
func naiveSuffixArray(t *testing.T, text string) []int {
	t.Helper()
	s := ids(t, text)
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return slices.Compare(s[sa[a]:], s[sa[b]:]) < 0
	})
	return sa
}

func randomText(r *rand.Rand, n, sigma int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.Intn(sigma))
	}
	return string(b)
}

func TestSuffixArrayBanana(t *testing.T) {
	got := MustBuild("banana$").SuffixArray()
	want := []int{6, 5, 3, 1, 0, 4, 2}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = MustBuild("banana").SuffixArray()
	want = []int{5, 3, 1, 0, 4, 2}
	if !slices.Equal(got, want) {
		t.Errorf("implicit terminator: got %v, want %v", got, want)
	}
}

func TestLeafCount(t *testing.T) {
	tests := []struct {
		text     string
		leaves   int
		length   int
		implicit bool
	}{
		{"", 1, 0, true},
		{"a", 2, 1, true},
		{"banana", 7, 6, true},
		{"banana$", 7, 7, false},
		{"ab$ba#", 6, 6, false},
		{"$", 1, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			tree := MustBuild(tc.text)
			if tree.Leaves() != tc.leaves {
				t.Errorf("leaves: got %d, want %d", tree.Leaves(), tc.leaves)
			}
			if tree.Len() != tc.length {
				t.Errorf("len: got %d, want %d", tree.Len(), tc.length)
			}
			if tree.Implicit() != tc.implicit {
				t.Errorf("implicit: got %v, want %v", tree.Implicit(), tc.implicit)
			}
			if n := len(tree.SuffixArray()); n != tc.length {
				t.Errorf("suffix array length: got %d, want %d", n, tc.length)
			}
		})
	}
}

func TestSuffixArrayMatchesNaive(t *testing.T) {
	texts := []string{
		"",
		"a",
		"aa",
		"aaaaaaa",
		"ab",
		"abab",
		"abcabxabcd",
		"mississippi",
		"xabxac",
		"dedododeeodo",
		"abcabxabcd$",
		"aab$aab#",
		"cdddcdc#ccd$",
	}
	r := rand.New(rand.NewSource(1))
	for n := 1; n < 120; n += 7 {
		for sigma := 1; sigma <= 4; sigma++ {
			texts = append(texts, randomText(r, n, sigma))
		}
	}

	for _, text := range texts {
		tree, err := Build([]byte(text))
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		got := tree.SuffixArray()
		want := naiveSuffixArray(t, text)
		if !slices.Equal(got, want) {
			t.Errorf("%q: got %v, want %v", text, got, want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{"abC", ErrInvalidAlphabet},
		{"a b", ErrInvalidAlphabet},
		{"caf\xc3\xa9", ErrInvalidAlphabet},
		{"a$b$", ErrRepeatedTerminator},
		{"##", ErrRepeatedTerminator},
		{"a$b", ErrUnterminated},
		{"#ab", ErrUnterminated},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			tree, err := Build([]byte(tc.text))
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}
			if tree != nil {
				t.Errorf("got a tree alongside error %v", err)
			}
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	MustBuild("ABC")
}

func TestBuildDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	text := randomText(r, 500, 3)
	a, b := MustBuild(text), MustBuild(text)
	if !slices.Equal(a.SuffixArray(), b.SuffixArray()) {
		t.Error("suffix arrays differ between builds")
	}
	if a.Nodes() != b.Nodes() {
		t.Errorf("node counts differ: %d vs %d", a.Nodes(), b.Nodes())
	}
}

func TestRepetitiveTextIsDeep(t *testing.T) {
	const n = 100000
	tree := MustBuild(strings.Repeat("a", n))
	sa := tree.SuffixArray()
	if len(sa) != n {
		t.Fatalf("got %d suffixes, want %d", len(sa), n)
	}
	for k, offset := range sa {
		if offset != n-1-k {
			t.Fatalf("sa[%d] = %d, want %d", k, offset, n-1-k)
		}
	}
}

func TestSuffixLinksResolved(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 20; round++ {
		text := randomText(r, 80, 3)
		tree := MustBuild(text)

		// Path labels of every internal node, to check that each link drops
		// exactly the first symbol.
		labels := map[int32]string{root: ""}
		full := string(tree.Text())
		stack := []int32{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range tree.nodes[n].children {
				if c == none || tree.isLeaf(c) {
					continue
				}
				start := tree.nodes[c].start
				labels[c] = labels[n] + full[start:start+tree.edgeLength(c)]
				stack = append(stack, c)
			}
		}

		for n, label := range labels {
			if n == root {
				if tree.nodes[n].link != root {
					t.Fatalf("%q: root links to %d", text, tree.nodes[n].link)
				}
				continue
			}
			got := labels[tree.nodes[n].link]
			if got != label[1:] {
				t.Fatalf("%q: node %q links to %q", text, label, got)
			}
		}
	}
}

func TestAddChildTwicePanics(t *testing.T) {
	tree := MustBuild("ab")
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	tree.addChild(root, uint8(symbolID('a')), 1)
}

func FuzzSuffixArray(f *testing.F) {
	f.Add([]byte("banana"))
	f.Add([]byte("mississippi"))
	f.Add([]byte("aaaaaaaaab"))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1000 {
			return
		}
		// Small alphabets produce the most repeats.
		text := make([]byte, len(data))
		for i, c := range data {
			text[i] = 'a' + c%3
		}

		tree, err := Build(text)
		if err != nil {
			t.Fatal(err)
		}
		got := tree.SuffixArray()
		want := naiveSuffixArray(t, string(text))
		if !slices.Equal(got, want) {
			t.Errorf("%q: got %v, want %v", text, got, want)
		}
	})
}
