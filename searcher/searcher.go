package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"abalone/game"
)

// Algorithm selects a search personality.
type Algorithm string

const (
	// Greedy evaluates every legal move one ply deep.
	Greedy Algorithm = "greedy"
	// IterativeMinimax is iterative deepening over full-width minimax.
	IterativeMinimax Algorithm = "id-minimax"
	// Champion is iterative deepening over alpha-beta with a
	// transposition table and quiescence search.
	Champion Algorithm = "champion"
)

const (
	defaultMaxDepth = 10
	defaultBudget   = 3 * time.Second
)

// AI chooses moves for one color. An instance owns private mutable
// search state (transposition table, repetition history, metrics) and
// must not be shared across simultaneous searches.
type AI struct {
	algorithm Algorithm
	color     game.Color
	maxDepth  int
	budget    time.Duration
	weights   game.Weights
	tableSize int

	table       *Table
	history     history
	rng         *rand.Rand
	metrics     Collector
	lastMetrics SearchMetrics
}

type Option func(*AI)

// WithMaxDepth bounds the iterative deepening loop.
func WithMaxDepth(depth int) Option {
	return func(ai *AI) {
		if depth > 0 {
			ai.maxDepth = depth
		}
	}
}

// WithTimeBudget sets the wall-clock budget for one BestMove call.
func WithTimeBudget(budget time.Duration) Option {
	return func(ai *AI) {
		if budget > 0 {
			ai.budget = budget
		}
	}
}

// WithWeights overrides the personality's evaluation weight preset.
func WithWeights(w game.Weights) Option {
	return func(ai *AI) {
		ai.weights = w
	}
}

// WithTableSize sets the transposition table capacity in entries;
// rounded up to a power of two.
func WithTableSize(size int) Option {
	return func(ai *AI) {
		if size > 0 {
			ai.tableSize = size
		}
	}
}

// WithSeed makes root-move shuffling reproducible.
func WithSeed(seed uint64) Option {
	return func(ai *AI) {
		ai.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNopMetrics disables metric collection.
func WithNopMetrics() Option {
	return func(ai *AI) {
		ai.metrics = NewNopCollector()
	}
}

func New(algorithm Algorithm, color game.Color, options ...Option) *AI {
	switch algorithm {
	case Greedy, IterativeMinimax, Champion:
	default:
		panic("searcher: unknown algorithm " + string(algorithm))
	}

	ai := &AI{ // Default values
		algorithm: algorithm,
		color:     color,
		maxDepth:  defaultMaxDepth,
		budget:    defaultBudget,
		weights:   weightsFor(algorithm),
		tableSize: defaultTableSize,
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:   NewCollector(),
	}
	for _, option := range options {
		option(ai)
	}
	ai.table = NewTable(ai.tableSize)
	return ai
}

func weightsFor(algorithm Algorithm) game.Weights {
	if algorithm == Champion {
		return game.AggressiveWeights
	}
	return game.BalancedWeights
}

// BestMove runs one top-level search against a snapshot of b; the live
// board is never mutated. It returns false when the side to move has no
// legal move, which the caller treats as a forfeit. progress may be
// nil; it is invoked at the deadline-check granularity during deep
// searches.
func (ai *AI) BestMove(b *game.Board, progress func()) (game.Move, bool) {
	ai.metrics.Start()

	var (
		move game.Move
		ok   bool
	)
	switch ai.algorithm {
	case Greedy:
		move, ok = ai.greedy(b)
	case IterativeMinimax:
		move, ok = ai.deepenMinimax(b, progress)
	case Champion:
		move, ok = ai.deepenAlphaBeta(b, progress)
	}

	ai.lastMetrics = ai.metrics.Complete()
	return move, ok
}

// RecordAppliedMove pushes the position hash into the repetition
// window. The caller must invoke it after every applied half-move, for
// both sides, so the window tracks the live game.
func (ai *AI) RecordAppliedMove(b *game.Board) {
	ai.history.Push(b.Hash())
}

// Metrics returns the snapshot of the most recent BestMove call.
func (ai *AI) Metrics() SearchMetrics { return ai.lastMetrics }

func (ai *AI) Color() game.Color     { return ai.color }
func (ai *AI) Algorithm() Algorithm  { return ai.algorithm }
func (ai *AI) Weights() game.Weights { return ai.weights }

// SetWeights swaps the weight vector between searches; the tournament
// harness uses it for its stalled-game escalation. Cached scores were
// computed under the old weights, so the transposition table is dropped
// with them.
func (ai *AI) SetWeights(w game.Weights) {
	ai.weights = w
	ai.table.Clear()
}
