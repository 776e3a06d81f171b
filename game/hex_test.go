package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordValid(t *testing.T) {
	t.Run("center and rim are valid", func(t *testing.T) {
		require.True(t, Coord{0, 0}.Valid())
		require.True(t, Coord{4, 0}.Valid())
		require.True(t, Coord{-4, 4}.Valid())
		require.True(t, Coord{0, -4}.Valid())
	})

	t.Run("beyond the rim is invalid", func(t *testing.T) {
		require.False(t, Coord{5, 0}.Valid())
		require.False(t, Coord{-5, 1}.Valid())
		require.False(t, Coord{3, 2}.Valid(), "cube coordinate sum exceeds the radius")
		require.False(t, Coord{-3, -2}.Valid())
	})

	t.Run("board has 61 cells", func(t *testing.T) {
		count := 0
		for q := int8(-BoardRadius); q <= BoardRadius; q++ {
			for r := int8(-BoardRadius); r <= BoardRadius; r++ {
				if (Coord{q, r}).Valid() {
					count++
				}
			}
		}
		require.Equal(t, 61, count)
	})
}

func TestCoordDistance(t *testing.T) {
	require.Equal(t, int8(0), Coord{0, 0}.Distance())
	require.Equal(t, int8(1), Coord{1, 0}.Distance())
	require.Equal(t, int8(1), Coord{-1, 1}.Distance())
	require.Equal(t, int8(4), Coord{4, 0}.Distance())
	require.Equal(t, int8(4), Coord{0, -4}.Distance())
	require.Equal(t, int8(4), Coord{-4, 4}.Distance())
}

func TestNeighborsOrder(t *testing.T) {
	// The fixed order is the tie-break for move classification.
	got := Coord{0, 0}.Neighbors()
	want := [6]Coord{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	require.Equal(t, want, got)
}

func TestCoordLess(t *testing.T) {
	require.True(t, Coord{0, 0}.Less(Coord{1, 0}))
	require.True(t, Coord{0, 0}.Less(Coord{0, 1}))
	require.False(t, Coord{1, 0}.Less(Coord{0, 5}))
	require.False(t, Coord{0, 0}.Less(Coord{0, 0}))
}
