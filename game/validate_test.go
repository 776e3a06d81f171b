package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// lineBoard builds attackers and defenders head to head on the q axis:
// n black marbles starting at (-4,0) followed by m white marbles.
func lineBoard(n, m int) (*Board, []Coord, Coord) {
	b := NewBoard()
	selected := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		c := Coord{int8(-4 + i), 0}
		b.SetPiece(c, Black)
		selected = append(selected, c)
	}
	for i := 0; i < m; i++ {
		b.SetPiece(Coord{int8(-4 + n + i), 0}, White)
	}
	target := Coord{int8(-4 + n), 0}
	return b, selected, target
}

func TestSumitoStrength(t *testing.T) {
	// A push of n attackers vs m defenders is legal iff n > m, n <= 3.
	for n := 1; n <= 3; n++ {
		for m := 1; m <= 3; m++ {
			t.Run(fmt.Sprintf("%dv%d", n, m), func(t *testing.T) {
				b, selected, target := lineBoard(n, m)
				move, ok := Validate(b, selected, target)
				if n > m {
					require.True(t, ok)
					require.Len(t, move.Pushed, m)
					require.Equal(t, Inline, move.Type)
				} else {
					require.False(t, ok, "equal or superior defense must block the push")
				}
			})
		}
	}
}

func TestValidateBlockedSumito(t *testing.T) {
	t.Run("beyond cell occupied by own color", func(t *testing.T) {
		b, selected, target := lineBoard(3, 1)
		b.SetPiece(Coord{0, 0}, Black) // directly behind the defender
		_, ok := Validate(b, selected, target)
		require.False(t, ok)
	})

	t.Run("beyond cell occupied by defender support", func(t *testing.T) {
		b, selected, target := lineBoard(3, 2)
		b.SetPiece(Coord{1, 0}, White)
		_, ok := Validate(b, selected, target)
		require.False(t, ok, "three defenders in a row cannot be pushed by three")
	})

	t.Run("beyond cell off the board permits the push", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{2, 0}, Black)
		b.SetPiece(Coord{3, 0}, Black)
		b.SetPiece(Coord{4, 0}, White)
		move, ok := Validate(b, []Coord{{2, 0}, {3, 0}}, Coord{4, 0})
		require.True(t, ok)
		require.Equal(t, []Coord{{4, 0}}, move.Pushed)
	})
}

func TestValidateRejectsBadSelections(t *testing.T) {
	t.Run("target not adjacent to any selected marble", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{0, 0}, Black)
		_, ok := Validate(b, []Coord{{0, 0}}, Coord{2, 0})
		require.False(t, ok)
	})

	t.Run("non-collinear selection", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{0, 0}, Black)
		b.SetPiece(Coord{1, 0}, Black)
		b.SetPiece(Coord{0, 1}, Black)
		_, ok := Validate(b, []Coord{{0, 0}, {1, 0}, {0, 1}}, Coord{2, 0})
		require.False(t, ok)
	})

	t.Run("gap in the selected line", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{0, 0}, Black)
		b.SetPiece(Coord{2, 0}, Black)
		_, ok := Validate(b, []Coord{{0, 0}, {2, 0}}, Coord{3, 0})
		require.False(t, ok)
	})

	t.Run("empty selection", func(t *testing.T) {
		b := NewBoard()
		_, ok := Validate(b, nil, Coord{0, 0})
		require.False(t, ok)
	})

	t.Run("target occupied by own color", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{0, 0}, Black)
		b.SetPiece(Coord{1, 0}, Black)
		_, ok := Validate(b, []Coord{{0, 0}}, Coord{1, 0})
		require.False(t, ok)
	})
}

func TestValidateRejectsEdgeSuicide(t *testing.T) {
	t.Run("inline step off the board", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{4, 0}, Black)
		_, ok := Validate(b, []Coord{{4, 0}}, Coord{5, 0})
		require.False(t, ok, "a marble may not walk off the edge")
	})

	t.Run("broadside with one destination off the board", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{3, 0}, Black)
		b.SetPiece(Coord{4, 0}, Black)
		// Sideways toward (3,1)/(4,1): (4,1) is off the board.
		_, ok := Validate(b, []Coord{{3, 0}, {4, 0}}, Coord{3, 1})
		require.False(t, ok)
	})
}

func TestValidateBroadside(t *testing.T) {
	t.Run("all destinations empty", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{0, 0}, Black)
		b.SetPiece(Coord{1, 0}, Black)
		move, ok := Validate(b, []Coord{{0, 0}, {1, 0}}, Coord{0, 1})
		require.True(t, ok)
		require.Equal(t, Broadside, move.Type)
		require.Empty(t, move.Pushed, "broadside moves cannot push")
	})

	t.Run("any occupied destination blocks", func(t *testing.T) {
		b := NewBoard()
		b.SetPiece(Coord{0, 0}, Black)
		b.SetPiece(Coord{1, 0}, Black)
		b.SetPiece(Coord{1, 1}, White)
		_, ok := Validate(b, []Coord{{0, 0}, {1, 0}}, Coord{0, 1})
		require.False(t, ok)
	})
}

func TestValidateInlineOrdersHeadFirst(t *testing.T) {
	b := NewBoard()
	b.SetPiece(Coord{0, 0}, Black)
	b.SetPiece(Coord{1, 0}, Black)

	move, ok := Validate(b, []Coord{{0, 0}, {1, 0}}, Coord{2, 0})
	require.True(t, ok)
	require.Equal(t, Inline, move.Type)
	require.Equal(t, []Coord{{1, 0}, {0, 0}}, move.Marbles, "head (adjacent to target) comes first")
}
