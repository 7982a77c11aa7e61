package lockstep

import (
	"iter"

	"github.com/davidvella/lockstep/extent"
	"github.com/davidvella/lockstep/selector"
)

// Sentinel2 marks the end of a two-sequence traversal. Slots for
// sequences the mask does not examine hold no retrievable state and
// take no part in any comparison.
type Sentinel2[PA, PB comparable] struct {
	a PA
	b PB
}

// Cursor2 traverses two sequences in lock-step. It is a value:
// copying a cursor snapshots the traversal state.
type Cursor2[A, B any, PA, PB comparable] struct {
	first  Seq[PA, A]
	second Seq[PB, B]
	mask   selector.Mask
	pa     PA
	pb     PB
}

// Deref returns pointers to both current elements. Writes through
// them mutate the source sequences.
func (c Cursor2[A, B, PA, PB]) Deref() (*A, *B) {
	return c.first.At(c.pa), c.second.At(c.pb)
}

// Next advances both positions by one step. The relative order of
// the advances is unspecified; positions of distinct sequences never
// alias.
func (c *Cursor2[A, B, PA, PB]) Next() {
	c.pa = c.first.Next(c.pa)
	c.pb = c.second.Next(c.pb)
}

// AtEnd reports whether any examined position has reached its end
// slot. Unexamined slots are excluded from the comparison entirely.
func (c Cursor2[A, B, PA, PB]) AtEnd(s Sentinel2[PA, PB]) bool {
	if c.mask.Examines(0) && c.pa == s.a {
		return true
	}
	if c.mask.Examines(1) && c.pb == s.b {
		return true
	}
	return false
}

// Sub returns the number of steps between two cursors, measured on
// the first sequence. It panics if that view does not measure
// distance.
func (c Cursor2[A, B, PA, PB]) Sub(o Cursor2[A, B, PA, PB]) int {
	d, ok := c.first.Distance(o.pa, c.pa)
	if !ok {
		panic("lockstep: first sequence does not measure distance")
	}
	return d
}

// Zip2 advances two sequences in lock-step, stopping as soon as any
// examined sequence is exhausted. It borrows its inputs, is cheap to
// copy, and may be traversed any number of times.
type Zip2[A, B any, PA, PB comparable] struct {
	first  Seq[PA, A]
	second Seq[PB, B]
	mask   selector.Mask
	end    Sentinel2[PA, PB]
}

// New2 combines two sequences, examining only the first.
func New2[A, B any, PA, PB comparable](a Seq[PA, A], b Seq[PB, B]) Zip2[A, B, PA, PB] {
	return New2With(selector.First, a, b)
}

// New2With combines two sequences under an explicit selector mask.
// Construction panics when the mask examines neither sequence, when
// an examined sequence has no end position, or when the fixed
// extents violate the bounds rule.
func New2With[A, B any, PA, PB comparable](mask selector.Mask, a Seq[PA, A], b Seq[PB, B]) Zip2[A, B, PA, PB] {
	checkMask(mask, 2)
	checkBounds(mask, []extent.Length{a.Extent(), b.Extent()})
	return Zip2[A, B, PA, PB]{
		first:  a,
		second: b,
		mask:   mask,
		end: Sentinel2[PA, PB]{
			a: sentinelEnd(mask, 0, a),
			b: sentinelEnd(mask, 1, b),
		},
	}
}

// Begin returns a fresh cursor at the start of every sequence.
func (z Zip2[A, B, PA, PB]) Begin() Cursor2[A, B, PA, PB] {
	return Cursor2[A, B, PA, PB]{
		first:  z.first,
		second: z.second,
		mask:   z.mask,
		pa:     z.first.Begin(),
		pb:     z.second.Begin(),
	}
}

// End returns the sentinel.
func (z Zip2[A, B, PA, PB]) End() Sentinel2[PA, PB] {
	return z.end
}

// Mask returns the selector in effect.
func (z Zip2[A, B, PA, PB]) Mask() selector.Mask {
	return z.mask
}

// All yields pointers to each pair of elements until an examined
// sequence is exhausted.
func (z Zip2[A, B, PA, PB]) All() iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		for c, e := z.Begin(), z.End(); !c.AtEnd(e); c.Next() {
			a, b := c.Deref()
			if !yield(a, b) {
				return
			}
		}
	}
}
