package suffixtree

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidAlphabet    = errors.New("suffixtree: symbol outside the supported alphabet")
	ErrRepeatedTerminator = errors.New("suffixtree: terminator occurs more than once")
	ErrUnterminated       = errors.New("suffixtree: text contains a terminator but does not end with one")
	ErrTooLarge           = errors.New("suffixtree: text too large")
)

const (
	// Terminator is the primary sentinel. It is appended to texts that carry none.
	Terminator = '$'
	// Separator is the second sentinel, closing the second text of a generalized tree.
	Separator = '#'

	numTerminators = 2
	numLetters     = 26

	// alphabetSize is the width of every child array: terminators first, then 'a'..'z'.
	alphabetSize = numTerminators + numLetters

	// maxText keeps every offset and arena index inside an int32.
	maxText = math.MaxInt32/2 - 1
)

// symbolID maps c to its child slot, or -1 when c is not part of the alphabet.
// Terminators sort below every letter and '$' sorts below '#'.
func symbolID(c byte) int {
	switch {
	case c == Terminator:
		return 0
	case c == Separator:
		return 1
	case c >= 'a' && c <= 'z':
		return int(c-'a') + numTerminators
	}
	return -1
}

func isTerminator(id uint8) bool {
	return id < numTerminators
}

// encode validates text and translates it to symbol ids.
// If text holds no terminator, '$' is appended and implicit is true.
func encode(text []byte) (ids []uint8, implicit bool, err error) {
	if len(text) > maxText {
		return nil, false, fmt.Errorf("%w: %d symbols", ErrTooLarge, len(text))
	}

	ids = make([]uint8, len(text), len(text)+1)
	var seen [numTerminators]bool
	terminated := false
	for i, c := range text {
		id := symbolID(c)
		if id < 0 {
			return nil, false, fmt.Errorf("%w: %q at offset %d", ErrInvalidAlphabet, c, i)
		}
		if id < numTerminators {
			if seen[id] {
				return nil, false, fmt.Errorf("%w: %q at offset %d", ErrRepeatedTerminator, c, i)
			}
			seen[id] = true
			terminated = true
		}
		ids[i] = uint8(id)
	}

	if !terminated {
		return append(ids, 0), true, nil
	}
	if !isTerminator(ids[len(ids)-1]) {
		return nil, false, ErrUnterminated
	}
	return ids, false, nil
}
