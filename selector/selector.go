// Package selector encodes, as a fixed-width bit set, which of the
// sequences in a lock-step traversal take part in termination checks.
// A sequence whose bit is set is "examined": its end position is kept
// in the sentinel and compared on every step.
package selector

import (
	"fmt"
	"math/bits"
)

// MaxSequences is the number of sequences a Mask can address.
const MaxSequences = 32

// Mask is a bit set with one bit per zipped sequence. Bit i set means
// sequence i is examined. The zero Mask examines nothing and is
// rejected at combinator construction.
type Mask uint32

// Masks for the common selections.
const (
	First  Mask = 1 << 0
	Second Mask = 1 << 1
	Third  Mask = 1 << 2
)

// Of returns a mask examining exactly the given sequence indices.
// It panics if an index is negative or at least MaxSequences.
func Of(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		if i < 0 || i >= MaxSequences {
			panic(fmt.Sprintf("selector: index %d out of range", i))
		}
		m |= 1 << uint(i)
	}
	return m
}

// All returns a mask examining the first n sequences.
func All(n int) Mask {
	if n < 0 || n > MaxSequences {
		panic(fmt.Sprintf("selector: sequence count %d out of range", n))
	}
	if n == MaxSequences {
		return Mask(^uint32(0))
	}
	return Mask(1<<uint(n)) - 1
}

// Examines reports whether sequence i is examined. Indices outside
// the mask width are never examined.
func (m Mask) Examines(i int) bool {
	return i >= 0 && i < MaxSequences && m&(1<<uint(i)) != 0
}

// Count returns the number of examined sequences.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

func (m Mask) String() string {
	return fmt.Sprintf("selector.Mask(%#b)", uint32(m))
}
