// Package btreeview adapts google/btree ordered trees into lockstep
// views. The tree must store element pointers; positions are those
// stored pointers, with nil serving as the end position. Advancing a
// position performs a successor search, so each lock-step step costs
// O(log n) comparisons on the tree side.
//
// The tree must not be modified while positions are outstanding:
// inserting or deleting items invalidates the traversal, exactly as
// mutating a slice's length invalidates a slice view.
package btreeview

import (
	"github.com/google/btree"

	"github.com/davidvella/lockstep"
)

// New returns a bounded view over t in ascending order. The view's
// extent is unknown: a tree's item count is a run time property.
func New[E any](t *btree.BTreeG[*E]) lockstep.Seq[*E, E] {
	return lockstep.Make[*E, E](
		func() *E {
			if item, ok := t.Min(); ok {
				return item
			}
			return nil
		},
		func(p *E) *E { return successor(t, p) },
		func(p *E) *E { return p },
		lockstep.WithEnd[*E, E](func() *E { return nil }),
	)
}

// successor finds the item ordered immediately after p. The tree
// keeps at most one item per ordering key (ReplaceOrInsert), so
// skipping the pivot itself is enough.
func successor[E any](t *btree.BTreeG[*E], p *E) *E {
	var succ *E
	skip := true
	t.AscendGreaterOrEqual(p, func(item *E) bool {
		if skip && item == p {
			skip = false
			return true
		}
		succ = item
		return false
	})
	return succ
}
