package extent_test

import (
	"testing"

	"github.com/davidvella/lockstep/extent"
	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	l := extent.Known(5)
	n, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	assert.True(t, l.IsKnown())
	assert.Equal(t, "5", l.String())

	assert.Panics(t, func() { extent.Known(-1) })
}

func TestUnknown(t *testing.T) {
	var l extent.Length
	assert.Equal(t, extent.Unknown, l)
	_, ok := l.Value()
	assert.False(t, ok)
	assert.False(t, l.IsKnown())
	assert.Equal(t, "unknown", l.String())
}

func TestMin(t *testing.T) {
	tests := []struct {
		name    string
		lengths []extent.Length
		want    extent.Length
	}{
		{
			name: "no entries",
			want: extent.Unknown,
		},
		{
			name:    "single known",
			lengths: []extent.Length{extent.Known(4)},
			want:    extent.Known(4),
		},
		{
			name:    "single unknown",
			lengths: []extent.Length{extent.Unknown},
			want:    extent.Unknown,
		},
		{
			name:    "all unknown",
			lengths: []extent.Length{extent.Unknown, extent.Unknown, extent.Unknown},
			want:    extent.Unknown,
		},
		{
			name:    "known before unknown",
			lengths: []extent.Length{extent.Known(3), extent.Unknown},
			want:    extent.Known(3),
		},
		{
			name:    "unknown before known",
			lengths: []extent.Length{extent.Unknown, extent.Known(3)},
			want:    extent.Known(3),
		},
		{
			name:    "smallest wins",
			lengths: []extent.Length{extent.Known(7), extent.Known(2), extent.Known(5)},
			want:    extent.Known(2),
		},
		{
			name:    "unknowns ignored between knowns",
			lengths: []extent.Length{extent.Known(7), extent.Unknown, extent.Known(5), extent.Unknown},
			want:    extent.Known(5),
		},
		{
			name:    "zero is a valid minimum",
			lengths: []extent.Length{extent.Known(0), extent.Known(9)},
			want:    extent.Known(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extent.Min(tt.lengths...))
		})
	}
}

// Min must not depend on argument order.
func TestMinOrderIndependent(t *testing.T) {
	a := []extent.Length{extent.Known(4), extent.Unknown, extent.Known(2)}
	b := []extent.Length{extent.Known(2), extent.Known(4), extent.Unknown}
	c := []extent.Length{extent.Unknown, extent.Known(2), extent.Known(4)}

	assert.Equal(t, extent.Min(a...), extent.Min(b...))
	assert.Equal(t, extent.Min(b...), extent.Min(c...))
}
