package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"abalone/game"
)

func TestNewDefaults(t *testing.T) {
	ai := New(Greedy, game.Black)

	require.Equal(t, Greedy, ai.Algorithm())
	require.Equal(t, game.Black, ai.Color())
	require.Equal(t, defaultMaxDepth, ai.maxDepth)
	require.Equal(t, defaultBudget, ai.budget)
	require.Equal(t, game.BalancedWeights, ai.Weights())
	require.Equal(t, defaultTableSize, ai.table.Cap())
}

func TestNewChampionPersonality(t *testing.T) {
	ai := New(Champion, game.White)
	require.Equal(t, game.AggressiveWeights, ai.Weights(),
		"personality selects the weight preset")
}

func TestNewOptions(t *testing.T) {
	w := game.Weights{Material: 1}
	ai := New(Champion, game.White,
		WithMaxDepth(4),
		WithTimeBudget(time.Second),
		WithWeights(w),
		WithTableSize(128))

	require.Equal(t, 4, ai.maxDepth)
	require.Equal(t, time.Second, ai.budget)
	require.Equal(t, w, ai.Weights())
	require.Equal(t, 128, ai.table.Cap())
}

func TestNewIgnoresInvalidOptionValues(t *testing.T) {
	ai := New(Greedy, game.Black, WithMaxDepth(0), WithTimeBudget(-time.Second))
	require.Equal(t, defaultMaxDepth, ai.maxDepth)
	require.Equal(t, defaultBudget, ai.budget)
}

func TestNewPanicsOnUnknownAlgorithm(t *testing.T) {
	require.Panics(t, func() {
		New(Algorithm("mcts"), game.Black)
	})
}

func TestSetWeightsClearsTable(t *testing.T) {
	ai := New(Champion, game.Black, WithTableSize(64))
	ai.table.Store(game.PositionHash(42), 1.5, 3, BoundExact)

	ai.SetWeights(game.BalancedWeights)

	_, ok := ai.table.Probe(game.PositionHash(42), 1)
	require.False(t, ok, "stale entries must not survive a weight change")
}

func TestMetricsResetPerSearch(t *testing.T) {
	b := game.NewBoard()
	b.SetPiece(game.Coord{Q: 0, R: 0}, game.White)

	ai := New(Greedy, game.White)
	_, ok := ai.BestMove(b, nil)
	require.True(t, ok)
	first := ai.Metrics()

	_, ok = ai.BestMove(b, nil)
	require.True(t, ok)
	second := ai.Metrics()

	require.Equal(t, first.Nodes, second.Nodes, "counters restart every call")
}

func TestRecordAppliedMoveBoundsWindow(t *testing.T) {
	ai := New(Greedy, game.Black)
	b := game.NewBoard()

	for i := 0; i < 10; i++ {
		b.SetPiece(game.Coord{Q: int8(i - 4), R: 0}, game.Black)
		ai.RecordAppliedMove(b)
	}

	require.Equal(t, historyWindow, ai.history.Len())
}
