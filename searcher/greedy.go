package searcher

import (
	"math"

	"abalone/game"
)

// repetitionPenalty is the flat penalty for a move that recreates a
// position in the history window.
const repetitionPenalty = -5000

// greedy evaluates every legal move one ply deep and keeps the strict
// maximum; the first best-scoring move seen wins ties.
func (ai *AI) greedy(b *game.Board) (game.Move, bool) {
	moves := game.LegalMoves(b, ai.color)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	best := math.Inf(-1)
	var bestMove game.Move
	var bestBreakdown game.Breakdown

	for _, move := range moves {
		sim := b.Copy()
		sim.Apply(move)
		ai.metrics.AddNode()

		score, bd := game.Evaluate(sim, ai.color, &move, ai.color, ai.weights)
		if ai.history.Contains(sim.Hash()) {
			score += repetitionPenalty
			bd.Repetition = repetitionPenalty
			bd.Total = score
		}

		if score > best {
			best = score
			bestMove = move
			bestBreakdown = bd
		}
	}

	ai.metrics.SetDepth(1)
	ai.metrics.SetBreakdown(bestBreakdown)
	return bestMove, true
}
