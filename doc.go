// Package lockstep advances several independent sequences in
// lock-step, producing one combined element per step and stopping as
// soon as a caller-selected subset of the sequences is exhausted.
// The sequences do not need a common length: a selector mask chooses,
// per call site, which of them are examined for termination, and a
// construction-time bounds check rejects combinations where an
// examined sequence is declared longer than an unexamined one.
//
// Sequences enter the combinator as non-owning views. A view exposes
// forward traversal only: a start position, a successor function, and
// a dereference that returns a pointer into the underlying storage,
// so writes through a combined element mutate the source. Views over
// slices are built with Slice (length treated as unknown) or Fixed
// (length fixed by the storage's shape); anything else with Make.
//
// Basic usage:
//
//	a := []int{1, 2, 3}
//	b := []string{"x", "y", "z", "w"}
//
//	// Examine only a: traversal stops after three steps and never
//	// touches b[3].
//	z := lockstep.New2(lockstep.Slice(a), lockstep.Slice(b))
//	for n, s := range z.All() {
//	    fmt.Println(*n, *s)
//	    *n *= 10 // writes reach the backing array of a
//	}
//
//	// Examine both: the shorter sequence wins.
//	z = lockstep.New2With(selector.First|selector.Second,
//	    lockstep.Slice(a), lockstep.Slice(b))
//
// Termination uses OR semantics: traversal stops the moment the
// first examined sequence reaches its end. Sentinels keep end
// positions only for examined sequences, so an unexamined view never
// needs end capability at all.
//
// All detectable misuse fails at construction, before the first
// step: a mask examining none of the sequences, an examined view
// without an end position, or fixed extents where the shortest
// examined sequence is longer than some other sequence. There is no
// runtime bounds check; keeping unexamined sequences long enough is
// the caller's responsibility when their lengths are not fixed.
package lockstep
