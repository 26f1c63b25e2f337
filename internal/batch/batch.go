// Package batch answers files of longest common prefix queries between two texts.
//
// Each text file is read whole with line breaks dropped. The pair file holds
// one "i j" query per line; the answer for each is written as "i j lcp".
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/viniciusth/suffixtree"
)

// Pair is one query: an offset into the first text and one into the second.
type Pair struct {
	I, J int
}

// Logf receives progress messages.
type Logf func(format string, args ...interface{})

// ReadText returns the content of path with line breaks removed.
func ReadText(path string, fold bool) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return JoinLines(string(contents), fold), nil
}

// JoinLines drops line breaks, folding case and accents when asked.
func JoinLines(s string, fold bool) string {
	s = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
	if fold {
		s = suffixtree.Fold(s, false, true)
	}
	return s
}

// ParsePairs reads whitespace separated offset pairs, one per line. Blank lines are skipped.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want 2 offsets, got %d fields", line, len(fields))
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		pairs = append(pairs, Pair{I: i, J: j})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return pairs, nil
}

// Answer writes "i j lcp" for every pair.
func Answer(g *suffixtree.Generalized, pairs []Pair, out io.Writer) error {
	w := bufio.NewWriter(out)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", p.I, p.J, g.LCP(p.I, p.J)); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(w.Flush())
}

// Run reads the inputs named by s, builds the generalized tree and answers every pair into out.
func Run(s Settings, out io.Writer, logf Logf) error {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	if err := s.Validate(); err != nil {
		return err
	}

	a, err := ReadText(s.TextOne, s.Fold)
	if err != nil {
		return errors.Wrap(err, "reading first text")
	}
	b, err := ReadText(s.TextTwo, s.Fold)
	if err != nil {
		return errors.Wrap(err, "reading second text")
	}

	f, err := os.Open(s.Pairs)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	pairs, err := ParsePairs(f)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", s.Pairs)
	}

	g, err := suffixtree.BuildGeneralized([]byte(a), []byte(b))
	if err != nil {
		return errors.Wrap(err, "building generalized suffix tree")
	}
	logf("Indexed %s + %s of text in %d nodes", humanize.Bytes(uint64(len(a))), humanize.Bytes(uint64(len(b))), g.Tree().Nodes())

	if err := Answer(g, pairs, out); err != nil {
		return err
	}
	logf("Answered %s queries", humanize.Comma(int64(len(pairs))))
	return nil
}
