package lockstep_test

import (
	"testing"

	"github.com/davidvella/lockstep"
	"github.com/davidvella/lockstep/selector"
	"github.com/stretchr/testify/assert"
)

func TestNew3DefaultMask(t *testing.T) {
	ids := []int{1, 2, 3}
	names := []string{"ann", "bob", "cyd", "dee"}
	scores := []float64{0.5, 0.25, 0.125, 0.0625, 0.03125}

	z := lockstep.New3(lockstep.Slice(ids), lockstep.Slice(names), lockstep.Slice(scores))

	var got []string
	for tr := range z.All() {
		got = append(got, *tr.Second)
		*tr.Third *= 2
	}
	assert.Equal(t, []string{"ann", "bob", "cyd"}, got)
	assert.Equal(t, []float64{1, 0.5, 0.25, 0.0625, 0.03125}, scores,
		"only the traversed prefix of scores is touched")
}

func TestNew3WithFirstAndThird(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{0, 0, 0, 0, 0, 0, 0}
	c := []int{7, 8}

	z := lockstep.New3With(selector.First|selector.Third,
		lockstep.Slice(a), lockstep.Slice(b), lockstep.Slice(c))

	steps := 0
	for range z.All() {
		steps++
	}
	assert.Equal(t, 2, steps, "the shorter examined sequence wins")
}

func TestZip3CursorProtocol(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5, 6}
	c := []int{7, 8, 9}

	z := lockstep.New3(lockstep.Slice(a), lockstep.Slice(b), lockstep.Slice(c))

	cur, end := z.Begin(), z.End()
	sum := 0
	for ; !cur.AtEnd(end); cur.Next() {
		x, y, w := cur.Deref()
		sum += *x + *y + *w
	}
	assert.Equal(t, 45, sum)
	assert.Equal(t, 3, cur.Sub(z.Begin()))
}

func TestNew3ConstructionPanics(t *testing.T) {
	ok := lockstep.Slice([]int{1, 2, 3})

	assert.Panics(t, func() {
		lockstep.New3With(0, ok, ok, ok)
	})
	assert.Panics(t, func() {
		// Third examined, fixed at 4; second fixed at 2 but unexamined.
		lockstep.New3With(selector.Third,
			ok, lockstep.Fixed(make([]int, 2)), lockstep.Fixed(make([]int, 4)))
	})
	assert.NotPanics(t, func() {
		lockstep.New3With(selector.Second,
			ok, lockstep.Fixed(make([]int, 2)), lockstep.Fixed(make([]int, 4)))
	})
}
