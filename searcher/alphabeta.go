package searcher

import (
	"math"
	"sort"
	"time"

	"abalone/game"
)

// quiescenceDepth is the fixed horizon extension over noisy moves.
const quiescenceDepth = 2

// deepenAlphaBeta is the champion searcher: iterative deepening over
// alpha-beta with a transposition table, push-first move ordering and a
// quiescence search at the horizon.
func (ai *AI) deepenAlphaBeta(b *game.Board, progress func()) (game.Move, bool) {
	rootMoves := game.LegalMoves(b, ai.color)
	if len(rootMoves) == 0 {
		return game.Move{}, false
	}

	deadline := time.Now().Add(ai.budget)
	s := &alphaBetaSearch{ai: ai, clock: deadlineClock{deadline: deadline, progress: progress}}

	var best game.Move
	haveBest := false

	for depth := 1; depth <= ai.maxDepth; depth++ {
		if time.Now().After(deadline) {
			break
		}
		orderMoves(rootMoves)

		alpha := math.Inf(-1)
		beta := math.Inf(1)
		depthBest := math.Inf(-1)
		var depthMove game.Move
		for _, move := range rootMoves {
			sim := b.Copy()
			sim.Apply(move)
			value := s.search(sim, depth-1, alpha, beta, false, move)
			if value > depthBest {
				depthBest = value
				depthMove = move
			}
			alpha = math.Max(alpha, value)
			if s.clock.expired {
				break
			}
		}

		if s.clock.expired {
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

// orderMoves puts pushes first, biggest push first, keeping generation
// order otherwise.
func orderMoves(moves []game.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return len(moves[i].Pushed) > len(moves[j].Pushed)
	})
}

type alphaBetaSearch struct {
	ai    *AI
	clock deadlineClock
}

func (s *alphaBetaSearch) search(b *game.Board, depth int, alpha, beta float64, maximizing bool, lastMove game.Move) float64 {
	s.ai.metrics.AddNode()

	if s.clock.tick() {
		return s.evaluate(b, maximizing, lastMove)
	}
	if _, over := b.Winner(); over || depth == 0 {
		return s.quiescence(b, quiescenceDepth, alpha, beta, maximizing, lastMove)
	}

	hash := s.nodeHash(b, maximizing)
	origAlpha, origBeta := alpha, beta
	if entry, ok := s.ai.table.Probe(hash, depth); ok {
		s.ai.metrics.AddCacheHit()
		switch entry.Kind {
		case BoundExact:
			return entry.Score
		case BoundLower:
			alpha = math.Max(alpha, entry.Score)
		case BoundUpper:
			beta = math.Min(beta, entry.Score)
		}
		if alpha >= beta {
			return entry.Score
		}
	}

	current := s.ai.color
	if !maximizing {
		current = current.Opponent()
	}
	moves := game.LegalMoves(b, current)
	if len(moves) == 0 {
		return s.evaluate(b, maximizing, lastMove)
	}
	orderMoves(moves)

	var value float64
	if maximizing {
		value = math.Inf(-1)
		for _, move := range moves {
			sim := b.Copy()
			sim.Apply(move)
			value = math.Max(value, s.search(sim, depth-1, alpha, beta, false, move))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				s.ai.metrics.AddCutoff()
				break
			}
			if s.clock.expired {
				break
			}
		}
	} else {
		value = math.Inf(1)
		for _, move := range moves {
			sim := b.Copy()
			sim.Apply(move)
			value = math.Min(value, s.search(sim, depth-1, alpha, beta, true, move))
			beta = math.Min(beta, value)
			if alpha >= beta {
				s.ai.metrics.AddCutoff()
				break
			}
			if s.clock.expired {
				break
			}
		}
	}

	// A value computed under an expired clock is partial; storing it
	// would poison later searches.
	if !s.clock.expired {
		kind := BoundExact
		if value <= origAlpha {
			kind = BoundUpper
		} else if value >= origBeta {
			kind = BoundLower
		}
		s.ai.table.Store(hash, value, depth, kind)
	}
	return value
}

// quiescence extends the horizon over noisy moves only: pushes, ordered
// by pushed count. Stand-pat first: if the static value already lies
// outside the window there is no need to recurse.
func (s *alphaBetaSearch) quiescence(b *game.Board, depth int, alpha, beta float64, maximizing bool, lastMove game.Move) float64 {
	s.ai.metrics.AddNode()

	standPat := s.evaluate(b, maximizing, lastMove)
	if _, over := b.Winner(); over || depth == 0 {
		return standPat
	}

	if maximizing {
		if standPat >= beta {
			return standPat
		}
		alpha = math.Max(alpha, standPat)
	} else {
		if standPat <= alpha {
			return standPat
		}
		beta = math.Min(beta, standPat)
	}

	current := s.ai.color
	if !maximizing {
		current = current.Opponent()
	}
	var noisy []game.Move
	for _, move := range game.LegalMoves(b, current) {
		if move.IsPush() {
			noisy = append(noisy, move)
		}
	}
	if len(noisy) == 0 {
		return standPat
	}
	orderMoves(noisy)

	value := standPat
	for _, move := range noisy {
		sim := b.Copy()
		sim.Apply(move)
		v := s.quiescence(sim, depth-1, alpha, beta, !maximizing, move)
		if maximizing {
			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
		} else {
			value = math.Min(value, v)
			beta = math.Min(beta, value)
		}
		if alpha >= beta {
			s.ai.metrics.AddCutoff()
			break
		}
	}
	return value
}

// nodeHash keys the transposition table: the position hash XOR the
// side-to-move bit on the maximizing side.
func (s *alphaBetaSearch) nodeHash(b *game.Board, maximizing bool) game.PositionHash {
	h := b.Hash()
	if maximizing {
		h = game.SideHash(h)
	}
	return h
}

func (s *alphaBetaSearch) evaluate(b *game.Board, maximizing bool, lastMove game.Move) float64 {
	v, _ := game.Evaluate(b, s.ai.color, &lastMove, makerColor(s.ai.color, maximizing), s.ai.weights)
	return v
}
