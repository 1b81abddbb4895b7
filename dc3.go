package dc3

// sample holds the sizes of the residue classes of a text of length n.
// n0, n1 and n2 count the positions i < n (n+1 for the mod 1 class when
// n%3 == 1) with i%3 equal to 0, 1 and 2. n02 is the size of the sample,
// made of the mod 1 and mod 2 positions.
type sample struct {
	n, n0, n1, n2, n02 int
}

func newSample(n int) sample {
	s := sample{
		n:  n,
		n0: (n + 2) / 3,
		n1: (n + 1) / 3,
		n2: n / 3,
	}
	s.n02 = s.n0 + s.n2
	return s
}

// positions stores the mod 1 and mod 2 positions into r[:n02].
// The "+(n0-n1)" adds a dummy mod 1 position at n if n%3 == 1, so that
// the mod 0 suffix at n-1 has a successor rank to compare with.
func (s sample) positions(r []int) {
	for i, j := 0, 0; i < s.n+(s.n0-s.n1); i++ {
		if i%3 != 0 {
			r[j] = i
			j++
		}
	}
}

// name stores into r the lexicographic names of the sample triples,
// which sa12 lists in sorted order. Mod 1 names go to r[:n0] and mod 2
// names to r[n0:n02]. It returns the largest name assigned.
func (s sample) name(t, sa12, r []int) int {
	name, c0, c1, c2 := 0, -1, -1, -1
	for _, p := range sa12[:s.n02] {
		if t[p] != c0 || t[p+1] != c1 || t[p+2] != c2 {
			name++
			c0, c1, c2 = t[p], t[p+1], t[p+2]
		}
		if p%3 == 1 {
			r[p/3] = name
		} else {
			r[p/3+s.n0] = name
		}
	}
	return name
}

// at returns the text position of the sample suffix with index q in the
// name string.
func (s sample) at(q int) int {
	if q < s.n0 {
		return q*3 + 1
	}
	return (q-s.n0)*3 + 2
}

// suffixArray stores the suffix array of t[:n] into sa[:n].
// The symbols of t[:n] must lie in [1, k], t[n:n+3] must be zero and n must
// be at least 2.
func suffixArray(t, sa []int, n, k, depth int) {
	if n < 2 || len(t) < n+sentinels || len(sa) < n {
		panic("dc3: misuse of suffixArray")
	}

	s := newSample(n)
	r := make([]int, s.n02+sentinels)
	sa12 := make([]int, s.n02+sentinels)

	// Sort the sample suffixes by their leading triple, least significant
	// symbol first.
	s.positions(r)
	radixPass(r[:s.n02], sa12, t[2:], k)
	radixPass(sa12[:s.n02], r, t[1:], k)
	radixPass(r[:s.n02], sa12, t, k)

	names := s.name(t, sa12, r)
	tracer().Debugf("dc3 level %d: n=%d k=%d sample=%d names=%d", depth, n, k, s.n02, names)

	if names < s.n02 {
		// Names are not unique yet; sort the name string.
		suffixArray(r, sa12, s.n02, names, depth+1)
		for i, q := range sa12[:s.n02] {
			r[q] = i + 1
		}
	} else {
		for q, rank := range r[:s.n02] {
			sa12[rank-1] = q
		}
	}

	sa0 := s.sortNonSample(t, sa12, k)
	s.merge(t, r, sa12, sa0, sa)
}

// sortNonSample returns the mod 0 positions sorted by their suffixes.
// sa12 gives their order by the rank of the following sample suffix, so a
// single stable pass on the first symbol completes the sort.
func (s sample) sortNonSample(t, sa12 []int, k int) []int {
	r0 := make([]int, 0, s.n0)
	for _, q := range sa12[:s.n02] {
		if q < s.n0 {
			r0 = append(r0, 3*q)
		}
	}
	sa0 := make([]int, s.n0)
	radixPass(r0, sa0, t, k)
	return sa0
}

// merge stores the merge of the sorted mod 0 suffixes in sa0 and the sorted
// sample suffixes in sa12 into sa[:n]. r holds the final sample ranks.
// The dummy sample suffix sorts first and is skipped.
func (s sample) merge(t, r, sa12, sa0, sa []int) {
	p, q := 0, s.n0-s.n1
	for m := 0; m < s.n; m++ {
		i := s.at(sa12[q]) // current sample suffix
		j := sa0[p]        // current mod 0 suffix

		var sampleFirst bool
		if sa12[q] < s.n0 {
			sampleFirst = leq2(t[i], r[sa12[q]+s.n0], t[j], r[j/3])
		} else {
			sampleFirst = leq3(t[i], t[i+1], r[sa12[q]-s.n0+1], t[j], t[j+1], r[j/3+s.n0])
		}

		if sampleFirst {
			sa[m] = i
			q++
			if q == s.n02 {
				// only mod 0 suffixes left
				for m++; p < s.n0; p, m = p+1, m+1 {
					sa[m] = sa0[p]
				}
			}
		} else {
			sa[m] = j
			p++
			if p == s.n0 {
				// only sample suffixes left
				for m++; q < s.n02; q, m = q+1, m+1 {
					sa[m] = s.at(sa12[q])
				}
			}
		}
	}
}
