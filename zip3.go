package lockstep

import (
	"iter"

	"github.com/davidvella/lockstep/extent"
	"github.com/davidvella/lockstep/selector"
)

// Triple groups the elements produced by one step of a three-way
// traversal.
type Triple[A, B, C any] struct {
	First  *A
	Second *B
	Third  *C
}

// Sentinel3 marks the end of a three-sequence traversal. Slots for
// unexamined sequences hold no retrievable state.
type Sentinel3[PA, PB, PC comparable] struct {
	a PA
	b PB
	c PC
}

// Cursor3 traverses three sequences in lock-step. It is a value:
// copying a cursor snapshots the traversal state.
type Cursor3[A, B, C any, PA, PB, PC comparable] struct {
	first  Seq[PA, A]
	second Seq[PB, B]
	third  Seq[PC, C]
	mask   selector.Mask
	pa     PA
	pb     PB
	pc     PC
}

// Deref returns pointers to the three current elements.
func (c Cursor3[A, B, C, PA, PB, PC]) Deref() (*A, *B, *C) {
	return c.first.At(c.pa), c.second.At(c.pb), c.third.At(c.pc)
}

// Next advances all three positions by one step, in no particular
// order.
func (c *Cursor3[A, B, C, PA, PB, PC]) Next() {
	c.pa = c.first.Next(c.pa)
	c.pb = c.second.Next(c.pb)
	c.pc = c.third.Next(c.pc)
}

// AtEnd reports whether any examined position has reached its end
// slot.
func (c Cursor3[A, B, C, PA, PB, PC]) AtEnd(s Sentinel3[PA, PB, PC]) bool {
	if c.mask.Examines(0) && c.pa == s.a {
		return true
	}
	if c.mask.Examines(1) && c.pb == s.b {
		return true
	}
	if c.mask.Examines(2) && c.pc == s.c {
		return true
	}
	return false
}

// Sub returns the number of steps between two cursors, measured on
// the first sequence. It panics if that view does not measure
// distance.
func (c Cursor3[A, B, C, PA, PB, PC]) Sub(o Cursor3[A, B, C, PA, PB, PC]) int {
	d, ok := c.first.Distance(o.pa, c.pa)
	if !ok {
		panic("lockstep: first sequence does not measure distance")
	}
	return d
}

// Zip3 advances three sequences in lock-step, stopping as soon as
// any examined sequence is exhausted.
type Zip3[A, B, C any, PA, PB, PC comparable] struct {
	first  Seq[PA, A]
	second Seq[PB, B]
	third  Seq[PC, C]
	mask   selector.Mask
	end    Sentinel3[PA, PB, PC]
}

// New3 combines three sequences, examining only the first.
func New3[A, B, C any, PA, PB, PC comparable](a Seq[PA, A], b Seq[PB, B], c Seq[PC, C]) Zip3[A, B, C, PA, PB, PC] {
	return New3With(selector.First, a, b, c)
}

// New3With combines three sequences under an explicit selector mask,
// with the same construction-time checks as New2With.
func New3With[A, B, C any, PA, PB, PC comparable](mask selector.Mask, a Seq[PA, A], b Seq[PB, B], c Seq[PC, C]) Zip3[A, B, C, PA, PB, PC] {
	checkMask(mask, 3)
	checkBounds(mask, []extent.Length{a.Extent(), b.Extent(), c.Extent()})
	return Zip3[A, B, C, PA, PB, PC]{
		first:  a,
		second: b,
		third:  c,
		mask:   mask,
		end: Sentinel3[PA, PB, PC]{
			a: sentinelEnd(mask, 0, a),
			b: sentinelEnd(mask, 1, b),
			c: sentinelEnd(mask, 2, c),
		},
	}
}

// Begin returns a fresh cursor at the start of every sequence.
func (z Zip3[A, B, C, PA, PB, PC]) Begin() Cursor3[A, B, C, PA, PB, PC] {
	return Cursor3[A, B, C, PA, PB, PC]{
		first:  z.first,
		second: z.second,
		third:  z.third,
		mask:   z.mask,
		pa:     z.first.Begin(),
		pb:     z.second.Begin(),
		pc:     z.third.Begin(),
	}
}

// End returns the sentinel.
func (z Zip3[A, B, C, PA, PB, PC]) End() Sentinel3[PA, PB, PC] {
	return z.end
}

// Mask returns the selector in effect.
func (z Zip3[A, B, C, PA, PB, PC]) Mask() selector.Mask {
	return z.mask
}

// All yields a Triple of element pointers per step until an examined
// sequence is exhausted.
func (z Zip3[A, B, C, PA, PB, PC]) All() iter.Seq[Triple[A, B, C]] {
	return func(yield func(Triple[A, B, C]) bool) {
		for c, e := z.Begin(), z.End(); !c.AtEnd(e); c.Next() {
			a, b, cc := c.Deref()
			if !yield(Triple[A, B, C]{First: a, Second: b, Third: cc}) {
				return
			}
		}
	}
}
