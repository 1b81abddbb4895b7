package dc3

// radixPass stably sorts the indices in a by the keys r[a[i]] and stores
// them in b. Every key must lie in [0, k].
func radixPass(a, b, r []int, k int) {
	if len(b) < len(a) {
		panic("dc3: misuse of radixPass")
	}

	c := make([]int, k+1)
	for _, i := range a {
		c[r[i]]++
	}

	// exclusive prefix sums
	sum := 0
	for key, cnt := range c {
		c[key] = sum
		sum += cnt
	}

	for _, i := range a {
		b[c[r[i]]] = i
		c[r[i]]++
	}
}

// leq2 reports whether the pair (a1, a2) is lexicographically smaller than (b1, b2).
func leq2(a1, a2, b1, b2 int) bool {
	return a1 < b1 || (a1 == b1 && a2 < b2)
}

// leq3 is leq2 for triples.
func leq3(a1, a2, a3, b1, b2, b3 int) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}
