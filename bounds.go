package lockstep

import (
	"fmt"

	"github.com/davidvella/lockstep/extent"
	"github.com/davidvella/lockstep/selector"
)

// checkMask rejects selections that could never trigger termination:
// none of the first n sequences is examined.
func checkMask(mask selector.Mask, n int) {
	for i := 0; i < n; i++ {
		if mask.Examines(i) {
			return
		}
	}
	panic(fmt.Sprintf("lockstep: mask %v examines none of %d sequences", mask, n))
}

// checkBounds enforces the construction-time safety rule: the
// smallest fixed extent among examined sequences must not exceed the
// smallest fixed extent among all sequences. Were it larger,
// lock-step traversal would run a shorter unexamined sequence past
// its end before termination triggers.
func checkBounds(mask selector.Mask, extents []extent.Length) {
	examined := make([]extent.Length, len(extents))
	for i, l := range extents {
		if mask.Examines(i) {
			examined[i] = l
		}
	}
	ne, ok := extent.Min(examined...).Value()
	if !ok {
		return
	}
	if na, ok := extent.Min(extents...).Value(); ok && ne > na {
		panic(fmt.Sprintf("lockstep: examined extent %d exceeds fixed extent %d of an unexamined sequence", ne, na))
	}
}

// sentinelEnd captures sequence i's end position when examined, or
// the zero placeholder when not. Unexamined views are never asked
// for an end.
func sentinelEnd[P comparable, E any](mask selector.Mask, i int, s Seq[P, E]) P {
	var zero P
	if !mask.Examines(i) {
		return zero
	}
	e, ok := s.End()
	if !ok {
		panic(fmt.Sprintf("lockstep: examined sequence %d has no end position", i))
	}
	return e
}
