package searcher

import (
	"math"
	"time"

	"abalone/game"
)

// deepenMinimax is the full-width anytime searcher: it reruns minimax
// at increasing depth and keeps the best move of the deepest iteration
// that finished inside the budget. If not even depth 1 completes, no
// move is returned.
func (ai *AI) deepenMinimax(b *game.Board, progress func()) (game.Move, bool) {
	rootMoves := game.LegalMoves(b, ai.color)
	if len(rootMoves) == 0 {
		return game.Move{}, false
	}

	deadline := time.Now().Add(ai.budget)
	s := &minimaxSearch{ai: ai, clock: deadlineClock{deadline: deadline, progress: progress}}

	var best game.Move
	haveBest := false

	for depth := 1; depth <= ai.maxDepth; depth++ {
		if time.Now().After(deadline) {
			break
		}

		// Shuffling the root varies play between games. It cannot
		// change which moves exist, only which equal-scored move wins.
		ai.rng.Shuffle(len(rootMoves), func(i, j int) {
			rootMoves[i], rootMoves[j] = rootMoves[j], rootMoves[i]
		})

		depthBest := math.Inf(-1)
		var depthMove game.Move
		for _, move := range rootMoves {
			sim := b.Copy()
			sim.Apply(move)
			value := s.minimax(sim, depth-1, false, move)
			if value > depthBest {
				depthBest = value
				depthMove = move
			}
			if s.clock.expired {
				break
			}
		}

		if s.clock.expired {
			// Partial depth: discard it, keep the previous result.
			break
		}
		best = depthMove
		haveBest = true
		ai.metrics.SetDepth(depth)
	}

	if haveBest {
		ai.recordRootBreakdown(b, best)
	}
	return best, haveBest
}

// recordRootBreakdown snapshots the labeled evaluation of the chosen
// root move so the metrics expose why it won.
func (ai *AI) recordRootBreakdown(b *game.Board, move game.Move) {
	sim := b.Copy()
	sim.Apply(move)
	_, bd := game.Evaluate(sim, ai.color, &move, ai.color, ai.weights)
	ai.metrics.SetBreakdown(bd)
}

type minimaxSearch struct {
	ai    *AI
	clock deadlineClock
}

// minimax is plain full-width minimax, no pruning. Past the deadline it
// unwinds with the static evaluation of whatever node it is at: an
// inexact but bounded anytime result.
func (s *minimaxSearch) minimax(b *game.Board, depth int, maximizing bool, lastMove game.Move) float64 {
	s.ai.metrics.AddNode()

	if s.clock.tick() {
		return s.evaluate(b, maximizing, lastMove)
	}
	if _, over := b.Winner(); over || depth == 0 {
		return s.evaluate(b, maximizing, lastMove)
	}

	current := s.ai.color
	if !maximizing {
		current = current.Opponent()
	}
	moves := game.LegalMoves(b, current)
	if len(moves) == 0 {
		return s.evaluate(b, maximizing, lastMove)
	}

	if maximizing {
		value := math.Inf(-1)
		for _, move := range moves {
			sim := b.Copy()
			sim.Apply(move)
			value = math.Max(value, s.minimax(sim, depth-1, false, move))
			if s.clock.expired {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range moves {
		sim := b.Copy()
		sim.Apply(move)
		value = math.Min(value, s.minimax(sim, depth-1, true, move))
		if s.clock.expired {
			break
		}
	}
	return value
}

func (s *minimaxSearch) evaluate(b *game.Board, maximizing bool, lastMove game.Move) float64 {
	v, _ := game.Evaluate(b, s.ai.color, &lastMove, makerColor(s.ai.color, maximizing), s.ai.weights)
	return v
}

// makerColor is the color that played the move leading into the node:
// when the maximizing side is to move, the opponent moved last.
func makerColor(own game.Color, maximizing bool) game.Color {
	if maximizing {
		return own.Opponent()
	}
	return own
}
