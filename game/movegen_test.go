package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesStandardPosition(t *testing.T) {
	b := NewBoard()
	b.InitStandard()

	moves := LegalMoves(b, Black)
	require.NotEmpty(t, moves, "the side to move always has moves in the opening")

	t.Run("reproducible across runs", func(t *testing.T) {
		// Map iteration varies generation order; the move set may not.
		want := signatureSet(moves)
		for i := 0; i < 5; i++ {
			again := LegalMoves(b, Black)
			require.Equal(t, len(moves), len(again))
			require.Equal(t, want, signatureSet(again))
		}
	})

	t.Run("no duplicate signatures", func(t *testing.T) {
		require.Len(t, signatureSet(moves), len(moves))
	})

	t.Run("no pushes in the opening", func(t *testing.T) {
		for _, m := range moves {
			require.False(t, m.IsPush())
		}
	})
}

func TestLegalMovesFindsPushes(t *testing.T) {
	b := NewBoard()
	b.SetPiece(Coord{0, 0}, Black)
	b.SetPiece(Coord{1, 0}, Black)
	b.SetPiece(Coord{2, 0}, White)

	moves := LegalMoves(b, Black)

	var pushes []Move
	for _, m := range moves {
		if m.IsPush() {
			pushes = append(pushes, m)
		}
	}
	require.Len(t, pushes, 1, "exactly the 2v1 sumito should be found")
	require.Equal(t, []Coord{{2, 0}}, pushes[0].Pushed)
	require.Equal(t, Coord{1, 0}, pushes[0].Dir)
}

func TestLegalMovesEmptyForAbsentColor(t *testing.T) {
	b := NewBoard()
	b.SetPiece(Coord{0, 0}, White)

	require.Empty(t, LegalMoves(b, Black))
}

func TestLegalMovesAllValidate(t *testing.T) {
	// Every generated move must replay through the validator.
	b := NewBoard()
	b.InitStandard()

	for _, m := range LegalMoves(b, White) {
		replayed, ok := Validate(b, m.Marbles, target(m))
		require.True(t, ok, "generated move failed validation: %v", m)
		require.Equal(t, m.Signature(), replayed.Signature())
	}
}

// target reconstructs the clicked cell of a move: the head's
// destination for inline, any marble's destination for broadside.
func target(m Move) Coord {
	return m.Marbles[0].Add(m.Dir)
}

func signatureSet(moves []Move) map[Signature]struct{} {
	set := make(map[Signature]struct{}, len(moves))
	for _, m := range moves {
		set[m.Signature()] = struct{}{}
	}
	return set
}
