package lockstep

import (
	"iter"

	"github.com/davidvella/lockstep/extent"
)

// Seq is a non-owning forward view over an ordered collection. P is
// the opaque position type, E the element type. Positions obtained
// from a view stay valid while other positions advance, and At
// returns a pointer into the underlying storage, so writes through it
// mutate the source.
//
// The zero Seq is not usable; build views with Slice, Fixed or Make.
type Seq[P comparable, E any] struct {
	begin func() P
	next  func(P) P
	at    func(P) *E
	end   func() P       // nil when the view cannot report an end
	dist  func(P, P) int // nil when positions are not measurable
	size  extent.Length
}

// SeqOption configures a view built with Make.
type SeqOption[P comparable, E any] func(*Seq[P, E])

// WithEnd declares the view's one-past-the-end position, letting the
// view be examined for termination.
func WithEnd[P comparable, E any](end func() P) SeqOption[P, E] {
	return func(s *Seq[P, E]) {
		s.end = end
	}
}

// WithDistance declares how many advances separate two positions.
func WithDistance[P comparable, E any](dist func(from, to P) int) SeqOption[P, E] {
	return func(s *Seq[P, E]) {
		s.dist = dist
	}
}

// WithStaticLen declares that the view's shape fixes its element
// count at exactly n, making the view take part in the
// construction-time bounds check.
func WithStaticLen[P comparable, E any](n int) SeqOption[P, E] {
	return func(s *Seq[P, E]) {
		s.size = extent.Known(n)
	}
}

// Make builds a view from a custom traversal: begin yields the start
// position, next the successor of a position, and at the element a
// position refers to. Views without WithEnd can only be combined
// unexamined.
func Make[P comparable, E any](begin func() P, next func(P) P, at func(P) *E, opts ...SeqOption[P, E]) Seq[P, E] {
	if begin == nil || next == nil || at == nil {
		panic("lockstep: Make requires begin, next and at")
	}
	s := Seq[P, E]{begin: begin, next: next, at: at}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Slice returns a bounded view over s. The view borrows s and never
// copies elements. Its extent is unknown: a slice's length is a run
// time property and takes no part in the bounds check.
func Slice[E any](s []E) Seq[int, E] {
	return Seq[int, E]{
		begin: func() int { return 0 },
		next:  func(p int) int { return p + 1 },
		at:    func(p int) *E { return &s[p] },
		end:   func() int { return len(s) },
		dist:  func(from, to int) int { return to - from },
	}
}

// Fixed returns a view over s whose extent is fixed at len(s). Use it
// for storage whose shape guarantees the element count, such as a Go
// array: Fixed(arr[:]).
func Fixed[E any](s []E) Seq[int, E] {
	v := Slice(s)
	v.size = extent.Known(len(s))
	return v
}

// Begin returns the view's start position.
func (s Seq[P, E]) Begin() P {
	return s.begin()
}

// Next returns the position one step past p.
func (s Seq[P, E]) Next(p P) P {
	return s.next(p)
}

// At returns a pointer to the element at p.
func (s Seq[P, E]) At(p P) *E {
	return s.at(p)
}

// End returns the one-past-the-end position, if the view has one.
func (s Seq[P, E]) End() (P, bool) {
	if s.end == nil {
		var zero P
		return zero, false
	}
	return s.end(), true
}

// Distance returns the number of advances from one position to
// another, if the view measures it.
func (s Seq[P, E]) Distance(from, to P) (int, bool) {
	if s.dist == nil {
		return 0, false
	}
	return s.dist(from, to), true
}

// Extent returns the view's fixed length, or extent.Unknown.
func (s Seq[P, E]) Extent() extent.Length {
	return s.size
}

// All yields pointers to every element from the start position to
// the end. It panics if the view has no end position.
func (s Seq[P, E]) All() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		e, ok := s.End()
		if !ok {
			panic("lockstep: view has no end position")
		}
		for p := s.Begin(); p != e; p = s.Next(p) {
			if !yield(s.At(p)) {
				return
			}
		}
	}
}
