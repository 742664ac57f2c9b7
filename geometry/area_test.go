package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAreaAccessors(t *testing.T) {
	a := NewArea(NewPoint(3, 4), 5, 6)

	require.Equal(t, NewPoint(3, 4), a.Anchor())
	require.Equal(t, 5, a.Width())
	require.Equal(t, 6, a.Height())

	p := NewPointArea(NewPoint(3, 4))
	require.Equal(t, 1, p.Width())
	require.Equal(t, 1, p.Height())
}

func TestAreaContains(t *testing.T) {
	outer := NewArea(NewPoint(0, 0), 4, 4)

	t.Run("contains itself", func(t *testing.T) {
		require.True(t, outer.Contains(outer))
	})

	t.Run("contains an inner area", func(t *testing.T) {
		require.True(t, outer.Contains(NewArea(NewPoint(1, 1), 2, 2)))
		require.True(t, outer.Contains(NewPointArea(NewPoint(3, 3))))
	})

	t.Run("shares an edge", func(t *testing.T) {
		require.True(t, outer.Contains(NewArea(NewPoint(0, 0), 4, 1)))
		require.True(t, outer.Contains(NewArea(NewPoint(2, 2), 2, 2)))
	})

	t.Run("does not contain a straddling area", func(t *testing.T) {
		require.False(t, outer.Contains(NewArea(NewPoint(2, 2), 4, 4)))
		require.False(t, outer.Contains(NewArea(NewPoint(-1, 0), 2, 2)))
	})

	t.Run("does not contain a disjoint area", func(t *testing.T) {
		require.False(t, outer.Contains(NewArea(NewPoint(10, 10), 1, 1)))
	})

	t.Run("is not symmetric", func(t *testing.T) {
		inner := NewArea(NewPoint(1, 1), 2, 2)
		require.True(t, outer.Contains(inner))
		require.False(t, inner.Contains(outer))
	})
}

func TestAreaIntersects(t *testing.T) {
	a := NewArea(NewPoint(0, 0), 4, 4)

	t.Run("overlapping areas intersect", func(t *testing.T) {
		b := NewArea(NewPoint(2, 2), 4, 4)
		require.True(t, a.Intersects(b))
		require.True(t, b.Intersects(a))
	})

	t.Run("touching edges do not intersect", func(t *testing.T) {
		// [0, 4) and [4, 8) share no cell.
		b := NewArea(NewPoint(4, 0), 4, 4)
		require.False(t, a.Intersects(b))
		require.False(t, b.Intersects(a))
	})

	t.Run("disjoint areas do not intersect", func(t *testing.T) {
		b := NewArea(NewPoint(10, 10), 2, 2)
		require.False(t, a.Intersects(b))
		require.False(t, b.Intersects(a))
	})

	t.Run("contains implies intersects", func(t *testing.T) {
		for _, b := range []Area[int]{
			NewArea(NewPoint(0, 0), 4, 4),
			NewArea(NewPoint(1, 2), 2, 1),
			NewPointArea(NewPoint(3, 0)),
		} {
			require.True(t, a.Contains(b))
			require.True(t, a.Intersects(b))
			require.True(t, b.Intersects(a))
		}
	})

	t.Run("negative coordinates", func(t *testing.T) {
		b := NewArea(NewPoint(-2, -2), 3, 3)
		require.True(t, a.Intersects(b))
		require.False(t, a.Contains(b))
	})
}

// Far edges that would overflow the coordinate type are treated as lying
// past the maximum representable coordinate instead of wrapping around.
func TestAreaOverflowGuard(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		full := NewArea(NewPoint(uint8(0), 0), 255, 255)
		atMax := NewArea(NewPoint(uint8(250), 250), 10, 10)

		require.True(t, atMax.Intersects(full))
		require.True(t, full.Intersects(atMax))
		require.False(t, full.Contains(atMax))
		require.False(t, atMax.Contains(full))

		inner := NewArea(NewPoint(uint8(251), 251), 4, 4)
		require.True(t, atMax.Contains(inner))
	})

	t.Run("signed", func(t *testing.T) {
		atMax := NewArea(NewPoint(int16(math.MaxInt16-2), 0), 5, 5)
		near := NewArea(NewPoint(int16(math.MaxInt16-4), 0), 3, 3)

		require.True(t, atMax.Intersects(near))
		require.True(t, near.Intersects(atMax))
		require.False(t, near.Contains(atMax))
	})
}
