package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"abalone/experiments"
	"abalone/experiments/metrics"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	experiments.Benchmark(3 * time.Second)

	runChampionSeries()
}

// runChampionSeries pits the pure deepening searcher against the
// champion, the matchup the tournament harness cares about.
func runChampionSeries() {
	arena := experiments.Arena{
		Config1: metrics.AgentConfig{ID: 1, Algorithm: "id-minimax", Budget: 2 * time.Second},
		Config2: metrics.AgentConfig{ID: 2, Algorithm: "champion", Budget: 5 * time.Second},
		Games:   4,
	}
	result, games, moves := arena.Run()

	writer, err := metrics.NewWriter("results")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create results writer")
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{arena.Config1, arena.Config2}); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(games); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}

	log.Info().
		Int("id_minimax_wins", result.Wins1).
		Int("champion_wins", result.Wins2).
		Int("draws", result.Draws).
		Str("results", writer.BaseDir()).
		Msg("series complete")
}
