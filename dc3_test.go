package dc3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusth/dc3/internal/oracle"
)

func TestRadixPassStable(t *testing.T) {
	r := []int{3, 1, 2, 1, 0, 3, 1}
	a := []int{0, 1, 2, 3, 4, 5, 6}
	b := make([]int, len(a))
	radixPass(a, b, r, 3)
	assert.Equal(t, []int{4, 1, 3, 6, 2, 0, 5}, b)

	// Reversed input keeps the reversed order among equal keys.
	a = []int{6, 5, 4, 3, 2, 1, 0}
	radixPass(a, b, r, 3)
	assert.Equal(t, []int{4, 6, 3, 1, 2, 5, 0}, b)
}

func TestRadixPassOffsetKeys(t *testing.T) {
	// Keys read through a shifted view, the way triples are sorted.
	text := []int{2, 1, 3, 1, 0, 0, 0}
	a := []int{0, 1, 2, 3}
	b := make([]int, len(a))
	radixPass(a, b, text[1:], 3)
	assert.Equal(t, []int{3, 0, 2, 1}, b)
}

func TestRadixPassMisuse(t *testing.T) {
	assert.Panics(t, func() {
		radixPass([]int{0, 1}, make([]int, 1), []int{0, 0}, 0)
	})
}

func TestLeq(t *testing.T) {
	tests := []struct {
		a, b [3]int
		leq2 bool
		leq3 bool
	}{
		{[3]int{1, 2, 3}, [3]int{2, 0, 0}, true, true},
		{[3]int{2, 0, 0}, [3]int{1, 2, 3}, false, false},
		{[3]int{1, 2, 3}, [3]int{1, 3, 0}, true, true},
		{[3]int{1, 3, 0}, [3]int{1, 2, 3}, false, false},
		{[3]int{1, 2, 3}, [3]int{1, 2, 4}, false, true},
		{[3]int{1, 2, 4}, [3]int{1, 2, 3}, false, false},
		{[3]int{1, 2, 3}, [3]int{1, 2, 3}, false, false},
	}
	for _, tc := range tests {
		a, b := tc.a, tc.b
		assert.Equal(t, tc.leq2, leq2(a[0], a[1], b[0], b[1]), "leq2(%v, %v)", a[:2], b[:2])
		assert.Equal(t, tc.leq3, leq3(a[0], a[1], a[2], b[0], b[1], b[2]), "leq3(%v, %v)", a, b)
	}
}

func TestSampleSizes(t *testing.T) {
	tests := []struct {
		n               int
		n0, n1, n2, n02 int
		positions       []int
	}{
		{n: 2, n0: 1, n1: 1, n2: 0, n02: 1, positions: []int{1}},
		{n: 3, n0: 1, n1: 1, n2: 1, n02: 2, positions: []int{1, 2}},
		{n: 4, n0: 2, n1: 1, n2: 1, n02: 3, positions: []int{1, 2, 4}},
		{n: 8, n0: 3, n1: 3, n2: 2, n02: 5, positions: []int{1, 2, 4, 5, 7}},
		{n: 10, n0: 4, n1: 3, n2: 3, n02: 7, positions: []int{1, 2, 4, 5, 7, 8, 10}},
	}
	for _, tc := range tests {
		s := newSample(tc.n)
		assert.Equal(t, sample{tc.n, tc.n0, tc.n1, tc.n2, tc.n02}, s)

		r := make([]int, s.n02)
		s.positions(r)
		assert.Equal(t, tc.positions, r, "n=%d", tc.n)

		for _, p := range tc.positions {
			assert.Equal(t, p, s.at(rIndex(s, p)))
		}
	}
}

// rIndex maps a sample position to its index in the name string.
func rIndex(s sample, p int) int {
	if p%3 == 1 {
		return p / 3
	}
	return p/3 + s.n0
}

// sampleNames runs the triple sort and naming steps on t and returns the
// name string along with the largest name.
func sampleNames(t []int, n, k int) ([]int, int) {
	s := newSample(n)
	r := make([]int, s.n02+sentinels)
	sa12 := make([]int, s.n02+sentinels)
	s.positions(r)
	radixPass(r[:s.n02], sa12, t[2:], k)
	radixPass(sa12[:s.n02], r, t[1:], k)
	radixPass(r[:s.n02], sa12, t, k)
	names := s.name(t, sa12, r)
	return r[:s.n02], names
}

func TestNameTriples(t *testing.T) {
	text := []int{2, 1, 3, 1, 2, 1, 3, 1, 0, 0, 0}
	r, names := sampleNames(text, 8, 3)

	// Sample triples:
	//	1: 1 3 1	2: 3 1 2	4: 2 1 3
	//	5: 1 3 1	7: 1 0 0
	// sorted: 100 < 131 = 131 < 213 < 312
	assert.Equal(t, 4, names)
	assert.Equal(t, []int{2, 3, 1, 4, 2}, r)
}

func TestNameTriplesEqualShareName(t *testing.T) {
	text := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0}
	r, names := sampleNames(text, 9, 1)
	// 111 for every full triple, 110 and 100 near the end.
	assert.Equal(t, 3, names)
	assert.Equal(t, []int{3, 3, 2, 3, 3, 1}, r)
}

func TestRecursionBranches(t *testing.T) {
	tests := []struct {
		name    string
		text    []int
		k       int
		recurse bool
	}{
		{"all equal", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 1, true},
		{"repeated pattern", []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2}, 2, true},
		{"abracadabra", []int{1, 2, 5, 1, 3, 1, 4, 1, 2, 5, 1}, 5, true},
		{"increasing", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 9, false},
		{"decreasing", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 1}, 9, false},
		{"distinct triples", []int{3, 1, 2, 2, 3, 1, 1, 1, 2, 3, 3, 2, 2}, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.text)
			padded := append(append([]int{}, tc.text...), 0, 0, 0)
			_, names := sampleNames(padded, n, tc.k)
			n02 := newSample(n).n02
			if tc.recurse {
				assert.Less(t, names, n02, "expected repeated triples")
			} else {
				assert.Equal(t, n02, names, "expected unique triples")
			}

			sa := make([]int, n+sentinels)
			suffixArray(padded, sa, n, tc.k, 0)
			assert.Equal(t, oracle.Naive(tc.text), sa[:n])
		})
	}
}

func TestSuffixArrayResidues(t *testing.T) {
	// Cover every n%3 so the dummy suffix is both present and absent.
	r := rand.New(rand.NewSource(1))
	for n := 2; n <= 40; n++ {
		for _, k := range []int{1, 2, 3, 7} {
			text := make([]int, n+sentinels)
			for i := 0; i < n; i++ {
				text[i] = 1 + r.Intn(k)
			}
			sa := make([]int, n)
			suffixArray(text, sa, n, k, 0)
			require.Equal(t, oracle.Naive(text[:n]), sa, "n=%d k=%d text=%v", n, k, text[:n])
		}
	}
}

func TestSuffixArrayDoesNotModifyText(t *testing.T) {
	text := []int{2, 1, 2, 1, 2, 1, 2, 1, 2, 0, 0, 0}
	orig := append([]int{}, text...)
	sa := make([]int, 9)
	suffixArray(text, sa, 9, 2, 0)
	assert.Equal(t, orig, text)
}

func TestSuffixArrayMisuse(t *testing.T) {
	tests := []struct {
		name string
		text []int
		sa   []int
		n    int
	}{
		{"too short", []int{1, 0, 0, 0}, make([]int, 1), 1},
		{"missing padding", []int{1, 2, 0}, make([]int, 2), 2},
		{"small output", []int{1, 2, 0, 0, 0}, make([]int, 1), 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "dc3: misuse of suffixArray", func() {
				suffixArray(tc.text, tc.sa, tc.n, 2, 0)
			})
		})
	}
}
