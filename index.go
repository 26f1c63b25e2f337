package suffixtree

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("suffixtree: invalid UTF-8 encoding in input text")
)

type Builder struct {
	text          string
	useLCP        bool
	caseSensitive bool
	normalize     bool
}

func NewBuilder(text string) *Builder {
	return &Builder{
		text:          text,
		useLCP:        true,
		caseSensitive: false,
		normalize:     true,
	}
}

// Skips the LCP array construction, this makes LCP queries O(|S|) instead of O(1).
// Saves O(|S|) memory: doesn't use 3*|S| extra memory.
func (b *Builder) SkipLCP() *Builder {
	b.useLCP = false
	return b
}

// Keeps upper case letters, which the alphabet then rejects.
func (b *Builder) CaseSensitive() *Builder {
	b.caseSensitive = true
	return b
}

// Skips folding accented letters to their base letter.
func (b *Builder) SkipNormalization() *Builder {
	b.normalize = false
	return b
}

func (b *Builder) Build() (*Index, error) {
	if !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}

	text := []byte(Fold(b.text, b.caseSensitive, b.normalize))
	tree, err := Build(text)
	if err != nil {
		return nil, err
	}
	suffixArray := tree.SuffixArray()

	var rank, lcp []int
	var lcpRMQ *rmq.RMQHybridNaive[int]
	if b.useLCP && len(suffixArray) > 1 {
		rank = rankArray(suffixArray)
		lcp = BuildLCPArray(suffixArray, text)
		lcpRMQ = rmq.NewRMQHybridNaive(lcp)
	}

	return &Index{
		tree:          tree,
		text:          text,
		suffixArray:   suffixArray,
		rank:          rank,
		lcp:           lcp,
		lcpRMQ:        lcpRMQ,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}, nil
}

// Index is a suffix tree over a folded text, with the suffix array and
// an RMQ over its LCP array for constant time LCP queries.
type Index struct {
	tree          *Tree
	text          []byte
	suffixArray   []int
	rank          []int
	lcp           []int
	lcpRMQ        *rmq.RMQHybridNaive[int]
	caseSensitive bool
	normalize     bool
}

var accents = runes.Remove(runes.In(unicode.Mn))

// Fold applies the same transforms Build applies to its text: lower case,
// then decomposition with combining marks dropped, so "Café" becomes "cafe".
func Fold(s string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	if normalize {
		folded, _, err := transform.String(transform.Chain(norm.NFD, accents, norm.NFC), s)
		if err == nil {
			s = folded
		}
	}
	return s
}

func (x *Index) Tree() *Tree {
	return x.tree
}

// Text returns the folded text.
func (x *Index) Text() string {
	return string(x.text)
}

func (x *Index) SuffixArray() []int {
	return x.suffixArray
}

// Find returns the offsets in the folded text where pattern occurs, ascending.
func (x *Index) Find(pattern string) []int {
	return x.tree.Find([]byte(Fold(pattern, x.caseSensitive, x.normalize)))
}

// LCP returns the longest common prefix length of the suffixes at i and j.
// Offsets outside the text yield 0.
func (x *Index) LCP(i, j int) int {
	n := len(x.text)
	if i < 0 || j < 0 || i >= n || j >= n {
		return 0
	}
	if i == j {
		return n - i
	}
	if x.lcp == nil {
		return int(x.tree.compare(int32(i), int32(j)))
	}

	ri, rj := x.rank[i], x.rank[j]
	if ri > rj {
		ri, rj = rj, ri
	}
	return x.lcp[x.lcpRMQ.Query(ri, rj-1)]
}
