package dc3

import "github.com/pkg/errors"

// Build returns the suffix array of symbols, whose values must lie in
// [0, k]. The suffix array lists the starting positions of the suffixes of
// symbols in ascending lexicographic order, where a suffix that is a proper
// prefix of another sorts first.
func Build(symbols []int, k int) ([]int, error) {
	if len(symbols) < 2 {
		return nil, errors.Wrapf(ErrTooShort, "n=%d", len(symbols))
	}
	t, err := NewText(symbols, k)
	if err != nil {
		return nil, err
	}
	return BuildText(t)
}

// BuildPrefix returns the suffix array of buf[:n]. buf is owned by the
// caller and only read.
func BuildPrefix(buf []int, n, k int) ([]int, error) {
	if n < 0 || n > len(buf) {
		return nil, errors.Wrapf(ErrLength, "n=%d, len(buf)=%d", n, len(buf))
	}
	return Build(buf[:n], k)
}

// BuildBytes returns the suffix array of b.
func BuildBytes(b []byte) ([]int, error) {
	if len(b) < 2 {
		return nil, errors.Wrapf(ErrTooShort, "n=%d", len(b))
	}
	return BuildText(BytesText(b))
}

// BuildText returns the suffix array of t.
func BuildText(t *Text) ([]int, error) {
	n := t.Len()
	if n < 2 {
		return nil, errors.Wrapf(ErrTooShort, "n=%d", n)
	}
	s, k := t.padded()
	sa := make([]int, n+sentinels)
	suffixArray(s, sa, n, k, 0)
	return sa[:n:n], nil
}
