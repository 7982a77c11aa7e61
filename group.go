package lockstep

import (
	"fmt"
	"iter"
	"slices"

	"github.com/davidvella/lockstep/extent"
	"github.com/davidvella/lockstep/selector"
)

// GroupSentinel marks the end of a homogeneous N-way traversal.
// Slots for unexamined sequences hold no retrievable state.
type GroupSentinel[P comparable] struct {
	ends []P
}

// GroupCursor traverses N same-typed sequences in lock-step. Unlike
// the fixed-arity cursors it carries its positions in a slice, so a
// plain copy shares state; use Clone for an independent snapshot.
type GroupCursor[P comparable, E any] struct {
	seqs []Seq[P, E]
	mask selector.Mask
	pos  []P
}

// Deref returns a freshly allocated slice of pointers to the current
// elements, one per sequence.
func (c GroupCursor[P, E]) Deref() []*E {
	return c.derefInto(make([]*E, len(c.pos)))
}

func (c GroupCursor[P, E]) derefInto(into []*E) []*E {
	for i, s := range c.seqs {
		into[i] = s.At(c.pos[i])
	}
	return into
}

// Next advances every position by one step, in no particular order.
func (c *GroupCursor[P, E]) Next() {
	for i, s := range c.seqs {
		c.pos[i] = s.Next(c.pos[i])
	}
}

// AtEnd reports whether any examined position has reached its end
// slot.
func (c GroupCursor[P, E]) AtEnd(s GroupSentinel[P]) bool {
	for i := range c.pos {
		if c.mask.Examines(i) && c.pos[i] == s.ends[i] {
			return true
		}
	}
	return false
}

// Clone returns an independent snapshot of the cursor.
func (c GroupCursor[P, E]) Clone() GroupCursor[P, E] {
	c.pos = slices.Clone(c.pos)
	return c
}

// Group advances N same-typed sequences in lock-step, stopping as
// soon as any examined sequence is exhausted. The element type must
// be shared; for heterogeneous elements use Zip2 or Zip3.
type Group[P comparable, E any] struct {
	seqs []Seq[P, E]
	mask selector.Mask
	end  GroupSentinel[P]
}

// NewGroup combines the sequences under an explicit selector mask,
// with the same construction-time checks as New2With. It panics when
// no sequence is supplied or when their number exceeds the mask
// width.
func NewGroup[P comparable, E any](mask selector.Mask, seqs ...Seq[P, E]) Group[P, E] {
	if len(seqs) == 0 {
		panic("lockstep: NewGroup requires at least one sequence")
	}
	if len(seqs) > selector.MaxSequences {
		panic(fmt.Sprintf("lockstep: %d sequences exceed the %d-sequence mask width", len(seqs), selector.MaxSequences))
	}
	checkMask(mask, len(seqs))
	extents := make([]extent.Length, len(seqs))
	for i, s := range seqs {
		extents[i] = s.Extent()
	}
	checkBounds(mask, extents)
	ends := make([]P, len(seqs))
	for i, s := range seqs {
		ends[i] = sentinelEnd(mask, i, s)
	}
	return Group[P, E]{
		seqs: slices.Clone(seqs),
		mask: mask,
		end:  GroupSentinel[P]{ends: ends},
	}
}

// NewGroupFirst combines the sequences, examining only the first.
func NewGroupFirst[P comparable, E any](seqs ...Seq[P, E]) Group[P, E] {
	return NewGroup(selector.First, seqs...)
}

// Begin returns a fresh, independent cursor at the start of every
// sequence.
func (g Group[P, E]) Begin() GroupCursor[P, E] {
	pos := make([]P, len(g.seqs))
	for i, s := range g.seqs {
		pos[i] = s.Begin()
	}
	return GroupCursor[P, E]{seqs: g.seqs, mask: g.mask, pos: pos}
}

// End returns the sentinel.
func (g Group[P, E]) End() GroupSentinel[P] {
	return g.end
}

// Mask returns the selector in effect.
func (g Group[P, E]) Mask() selector.Mask {
	return g.mask
}

// Len returns the number of combined sequences.
func (g Group[P, E]) Len() int {
	return len(g.seqs)
}

// All yields one slice of element pointers per step until an
// examined sequence is exhausted. The slice is reused between steps;
// callers that retain it across steps must copy it first.
func (g Group[P, E]) All() iter.Seq[[]*E] {
	return func(yield func([]*E) bool) {
		buf := make([]*E, len(g.seqs))
		for c, e := g.Begin(), g.End(); !c.AtEnd(e); c.Next() {
			if !yield(c.derefInto(buf)) {
				return
			}
		}
	}
}
