// Package extent models sequence lengths that are fixed by a
// sequence's shape, and the reduction used to compare them. A length
// is either known with an exact element count, or unknown; lengths
// that are only discoverable at run time stay unknown even when the
// count happens to be available.
package extent

import (
	"fmt"
	"strconv"
)

// Length is a possibly-unknown fixed sequence length. The zero value
// is Unknown.
type Length struct {
	n     int
	known bool
}

// Unknown is the length of a sequence whose element count is not
// fixed by its shape.
var Unknown = Length{}

// Known returns the length of a sequence fixed at exactly n elements.
// It panics if n is negative.
func Known(n int) Length {
	if n < 0 {
		panic(fmt.Sprintf("extent: negative length %d", n))
	}
	return Length{n: n, known: true}
}

// Value returns the fixed element count and whether it is known.
func (l Length) Value() (int, bool) {
	return l.n, l.known
}

// IsKnown reports whether the length is fixed.
func (l Length) IsKnown() bool {
	return l.known
}

func (l Length) String() string {
	if !l.known {
		return "unknown"
	}
	return strconv.Itoa(l.n)
}

// Min reduces lengths to the smallest known entry, ignoring unknown
// entries. It returns Unknown when no entry is known. The result does
// not depend on the order of the arguments.
func Min(lengths ...Length) Length {
	out := Unknown
	for _, l := range lengths {
		if !l.known {
			continue
		}
		if !out.known || l.n < out.n {
			out = l
		}
	}
	return out
}
