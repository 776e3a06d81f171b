package metrics

import "time"

// AgentConfig identifies one search configuration in a series.
type AgentConfig struct {
	ID        int
	Algorithm string
	MaxDepth  int
	Budget    time.Duration
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID, played Black
	Agent2   int // AgentConfig.ID, played White
	Winner   string
	Reason   string
	Moves    int
	Duration time.Duration
}

// MoveRecord summarizes one half-move's search.
type MoveRecord struct {
	Game      int // GameRecord.ID
	Step      int
	Player    string
	Nodes     int
	Cutoffs   int
	CacheHits int
	Depth     int
	Elapsed   time.Duration
}
