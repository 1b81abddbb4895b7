// Package oracle holds reference implementations to check suffix arrays
// against.
package oracle

import (
	"slices"

	"github.com/pkg/errors"
)

var (
	ErrNotPermutation = errors.New("oracle: suffix array is not a permutation")
	ErrOrder          = errors.New("oracle: suffixes out of order")
)

// Compare compares the suffixes of s starting at i and j. A suffix that is
// a proper prefix of the other sorts first.
func Compare(s []int, i, j int) int {
	for i < len(s) && j < len(s) {
		if s[i] != s[j] {
			if s[i] < s[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i == len(s) && j == len(s):
		return 0
	case i == len(s):
		return -1
	default:
		return 1
	}
}

// Naive returns the suffix array of s by comparing suffixes directly.
// It takes O(n^2 log n) time in the worst case.
func Naive(s []int) []int {
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(i, j int) int {
		return Compare(s, i, j)
	})
	return sa
}

// Check verifies in linear time that sa is the suffix array of s.
//
// Two adjacent entries i, j are in order if s[i] < s[j], or if s[i] == s[j]
// and the suffix at i+1 precedes the suffix at j+1 in sa. The empty suffix
// precedes every other suffix.
func Check(s, sa []int) error {
	n := len(s)
	if len(sa) != n {
		return errors.Wrapf(ErrNotPermutation, "len(sa)=%d, len(s)=%d", len(sa), n)
	}

	rank := make([]int, n+1)
	for i := range rank {
		rank[i] = -1
	}
	for m, p := range sa {
		if p < 0 || p >= n || rank[p] >= 0 {
			return errors.Wrapf(ErrNotPermutation, "sa[%d]=%d", m, p)
		}
		rank[p] = m
	}

	for m := 1; m < n; m++ {
		i, j := sa[m-1], sa[m]
		if s[i] < s[j] {
			continue
		}
		if s[i] > s[j] || rank[i+1] > rank[j+1] {
			return errors.Wrapf(ErrOrder, "sa[%d]=%d, sa[%d]=%d", m-1, i, m, j)
		}
	}
	return nil
}

// Ints widens b to a slice of ints.
func Ints(b []byte) []int {
	s := make([]int, len(b))
	for i, c := range b {
		s[i] = int(c)
	}
	return s
}
