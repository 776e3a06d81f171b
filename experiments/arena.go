package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"abalone/engine"
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/searcher"
)

const (
	// rageStep escalates stalled games: at this step with no captures
	// on either side, material and aggression weights are multiplied.
	rageStep       = 100
	rageMultiplier = 100
)

// Arena plays a series between two search configurations, swapping
// colors at the halfway point.
type Arena struct {
	Config1 metrics.AgentConfig
	Config2 metrics.AgentConfig
	Games   int
}

// SeriesResult tallies a finished series from Config1's perspective.
type SeriesResult struct {
	Wins1 int
	Wins2 int
	Draws int
}

// Run plays the series and returns the tally plus raw records for the
// CSV writer.
func (a *Arena) Run() (SeriesResult, []metrics.GameRecord, []metrics.MoveRecord) {
	var result SeriesResult
	var games []metrics.GameRecord
	var moves []metrics.MoveRecord

	for i := 1; i <= a.Games; i++ {
		blackConfig, whiteConfig := a.Config1, a.Config2
		if i > a.Games/2 { // Swap sides
			blackConfig, whiteConfig = a.Config2, a.Config1
		}
		log.Info().
			Int("game", i).
			Str("black", blackConfig.Algorithm).
			Str("white", whiteConfig.Algorithm).
			Msg("starting game")

		start := time.Now()
		outcome, records := runGame(blackConfig, whiteConfig)

		games = append(games, metrics.GameRecord{
			ID:       i,
			Agent1:   blackConfig.ID,
			Agent2:   whiteConfig.ID,
			Winner:   winnerLabel(outcome),
			Reason:   outcome.Reason,
			Moves:    outcome.Moves,
			Duration: time.Since(start),
		})
		for _, r := range records {
			moves = append(moves, metrics.MoveRecord{
				Game:      i,
				Step:      r.Step,
				Player:    r.Player.String(),
				Nodes:     r.Metrics.Nodes,
				Cutoffs:   r.Metrics.Cutoffs,
				CacheHits: r.Metrics.CacheHits,
				Depth:     r.Metrics.Depth,
				Elapsed:   r.Metrics.Elapsed,
			})
		}

		switch {
		case outcome.Draw:
			result.Draws++
		case winnerConfig(outcome, blackConfig, whiteConfig) == a.Config1.ID:
			result.Wins1++
		default:
			result.Wins2++
		}
	}

	log.Info().
		Int("wins1", result.Wins1).
		Int("wins2", result.Wins2).
		Int("draws", result.Draws).
		Msg("series finished")
	return result, games, moves
}

func runGame(blackConfig, whiteConfig metrics.AgentConfig) (engine.Outcome, []engine.MoveRecord) {
	black := newAI(blackConfig, game.Black)
	white := newAI(whiteConfig, game.White)

	e := engine.NewLocal(black, white)
	raged := false
	e.StepHook = func(step int, b *game.Board) {
		if raged || step != rageStep {
			return
		}
		if b.Score(game.Black) != 0 || b.Score(game.White) != 0 {
			return
		}
		log.Info().Int("step", step).Msg("no captures yet, escalating weights")
		black.SetWeights(black.Weights().Scale(rageMultiplier, rageMultiplier))
		white.SetWeights(white.Weights().Scale(rageMultiplier, rageMultiplier))
		raged = true
	}
	return e.Run()
}

func newAI(config metrics.AgentConfig, color game.Color) *searcher.AI {
	options := []searcher.Option{}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.Budget > 0 {
		options = append(options, searcher.WithTimeBudget(config.Budget))
	}
	return searcher.New(searcher.Algorithm(config.Algorithm), color, options...)
}

func winnerLabel(outcome engine.Outcome) string {
	if outcome.Draw {
		return "draw"
	}
	return outcome.Winner.String()
}

func winnerConfig(outcome engine.Outcome, blackConfig, whiteConfig metrics.AgentConfig) int {
	if outcome.Winner == game.Black {
		return blackConfig.ID
	}
	return whiteConfig.ID
}
