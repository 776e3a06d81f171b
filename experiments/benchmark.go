package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"abalone/game"
	"abalone/searcher"
)

// BenchmarkResult is one algorithm's search profile on the standard
// opening position.
type BenchmarkResult struct {
	Algorithm searcher.Algorithm
	Metrics   searcher.SearchMetrics
	FoundMove bool
}

// Benchmark runs each algorithm once on the standard opening under the
// given budget and reports nodes, depth, cutoffs and cache hits.
func Benchmark(budget time.Duration) []BenchmarkResult {
	algorithms := []searcher.Algorithm{searcher.Greedy, searcher.IterativeMinimax, searcher.Champion}
	results := make([]BenchmarkResult, 0, len(algorithms))

	for _, algorithm := range algorithms {
		b := game.NewBoard()
		b.InitStandard()

		ai := searcher.New(algorithm, game.White, searcher.WithTimeBudget(budget))
		_, ok := ai.BestMove(b, nil)
		m := ai.Metrics()

		log.Info().
			Str("algorithm", string(algorithm)).
			Int("nodes", m.Nodes).
			Int("depth", m.Depth).
			Int("cutoffs", m.Cutoffs).
			Int("cache_hits", m.CacheHits).
			Dur("elapsed", m.Elapsed).
			Msg("benchmark")

		results = append(results, BenchmarkResult{Algorithm: algorithm, Metrics: m, FoundMove: ok})
	}
	return results
}
