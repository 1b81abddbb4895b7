/*
Package dc3 builds suffix arrays in linear time with the difference cover
modulo 3 algorithm (also known as the skew algorithm) by Kärkkäinen and
Sanders.

The suffixes starting at positions i with i mod 3 != 0 form the sample. The
sample is sorted by radix sorting its leading triples and, when triples
repeat, by recursing on the string of triple names. The remaining suffixes
are then sorted with a single radix pass using the sample ranks, and the two
sorted classes are merged.

References

	https://www.cs.helsinki.fi/u/tpkarkka/publications/jacm05-revised.pdf
*/
package dc3

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dc3'
func tracer() tracing.Trace {
	return tracing.Select("dc3")
}
