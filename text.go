package dc3

import (
	"math"

	"github.com/pkg/errors"
)

// sentinels is the number of zero entries following every text.
const sentinels = 3

// Text is a symbol sequence followed by three zero sentinels, so that a
// triple starting at any position of the sequence can be read without
// bounds checks.
type Text struct {
	s    []int // len(s) == Len()+sentinels
	k    int
	zero bool // some symbol equals the sentinel value
}

// NewText copies symbols into a padded text over the alphabet [0, k].
func NewText(symbols []int, k int) (*Text, error) {
	if k < 0 || k > math.MaxInt-2 {
		return nil, errors.Wrapf(ErrAlphabet, "k=%d", k)
	}
	t := &Text{
		s: make([]int, len(symbols)+sentinels),
		k: k,
	}
	for i, c := range symbols {
		if c < 0 || c > k {
			return nil, errors.Wrapf(ErrSymbolRange, "symbol %d at position %d, alphabet [0, %d]", c, i, k)
		}
		if c == 0 {
			t.zero = true
		}
		t.s[i] = c
	}
	return t, nil
}

// BytesText returns the padded text of b over the alphabet [0, 255].
func BytesText(b []byte) *Text {
	t := &Text{
		s: make([]int, len(b)+sentinels),
		k: math.MaxUint8,
	}
	for i, c := range b {
		if c == 0 {
			t.zero = true
		}
		t.s[i] = int(c)
	}
	return t
}

// Len returns the number of symbols, not counting the sentinels.
func (t *Text) Len() int { return len(t.s) - sentinels }

// Alphabet returns the largest symbol value the text admits.
func (t *Text) Alphabet() int { return t.k }

// Symbols returns the symbols without the sentinels. The returned slice
// shares memory with t and must not be modified.
func (t *Text) Symbols() []int {
	n := t.Len()
	return t.s[:n:n]
}

// padded returns the text in the form suffixArray consumes it, with every
// symbol in [1, k] and zeros past the end, along with k.
// Texts using 0 as a symbol are shifted by one into a fresh buffer, so the
// sentinel stays strictly smaller than any symbol.
func (t *Text) padded() ([]int, int) {
	if !t.zero {
		return t.s, t.k
	}
	tracer().Debugf("text of length %d uses the sentinel value, shifting alphabet to [1, %d]", t.Len(), t.k+1)
	s := make([]int, len(t.s))
	for i, c := range t.Symbols() {
		s[i] = c + 1
	}
	return s, t.k + 1
}
