package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"abalone/game"
)

func TestHistoryWindow(t *testing.T) {
	var h history

	for i := 1; i <= 10; i++ {
		h.Push(game.PositionHash(i))
	}

	require.Equal(t, historyWindow, h.Len(), "window holds the most recent 6 entries")
	require.False(t, h.Contains(game.PositionHash(4)), "oldest entries fall out")
	require.True(t, h.Contains(game.PositionHash(5)))
	require.True(t, h.Contains(game.PositionHash(10)))
	require.False(t, h.Contains(game.PositionHash(11)))
}

func TestHistoryEmpty(t *testing.T) {
	var h history
	require.Equal(t, 0, h.Len())
	require.False(t, h.Contains(game.PositionHash(0)))
}
