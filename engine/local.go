package engine

import (
	"github.com/rs/zerolog/log"

	"abalone/game"
	"abalone/searcher"
)

const (
	defaultMoveLimit = 200
	repetitionLimit  = 3
	progressEvery    = 20
)

// Outcome describes how a local game ended.
type Outcome struct {
	Winner game.Color
	Draw   bool
	Reason string
	Moves  int
}

// MoveRecord captures one applied half-move for experiment output.
type MoveRecord struct {
	Step    int
	Player  game.Color
	Move    game.Move
	Metrics searcher.SearchMetrics
}

// Local drives a full game between two AIs on one live board. Search
// only ever sees copies; Local is the single writer of Board. StepHook,
// when set, runs at the top of every step and may adjust the AIs (the
// tournament harness uses it for weight escalation).
type Local struct {
	Board     *game.Board
	Black     *searcher.AI
	White     *searcher.AI
	MoveLimit int
	StepHook  func(step int, b *game.Board)
}

func NewLocal(black, white *searcher.AI) *Local {
	if black.Color() != game.Black || white.Color() != game.White {
		panic("engine: agents configured for the wrong colors")
	}
	b := game.NewBoard()
	b.InitStandard()
	return &Local{Board: b, Black: black, White: white, MoveLimit: defaultMoveLimit}
}

// Run executes the game loop until a win by capture, a forfeit, a draw
// by threefold repetition, or the move limit's sudden-death score
// comparison. After every applied half-move both AIs are notified of
// the new position so their repetition windows track the live game.
func (e *Local) Run() (Outcome, []MoveRecord) {
	var records []MoveRecord
	seen := make(map[game.PositionHash]int)
	turn := game.Black

	for step := 1; ; step++ {
		hash := e.Board.Hash()
		seen[hash]++
		if seen[hash] >= repetitionLimit {
			log.Info().Int("step", step).Msg("draw by threefold repetition")
			return Outcome{Draw: true, Reason: "repetition", Moves: step - 1}, records
		}

		if e.StepHook != nil {
			e.StepHook(step, e.Board)
		}

		if step > e.MoveLimit {
			return e.suddenDeath(step - 1), records
		}

		ai := e.Black
		if turn == game.White {
			ai = e.White
		}
		move, ok := ai.BestMove(e.Board, nil)
		if !ok {
			log.Info().Str("player", turn.String()).Msg("forfeit: no legal moves")
			return Outcome{Winner: turn.Opponent(), Reason: "forfeit", Moves: step - 1}, records
		}

		winner, over := e.Board.Apply(move)
		e.Black.RecordAppliedMove(e.Board)
		e.White.RecordAppliedMove(e.Board)

		records = append(records, MoveRecord{Step: step, Player: turn, Move: move, Metrics: ai.Metrics()})

		if step%progressEvery == 0 {
			log.Info().
				Int("step", step).
				Int("black", e.Board.Score(game.Black)).
				Int("white", e.Board.Score(game.White)).
				Msg("progress")
		}

		if over {
			log.Info().Str("winner", winner.String()).Int("moves", step).Msg("game over")
			return Outcome{Winner: winner, Reason: "capture", Moves: step}, records
		}
		turn = turn.Opponent()
	}
}

func (e *Local) suddenDeath(moves int) Outcome {
	black := e.Board.Score(game.Black)
	white := e.Board.Score(game.White)
	log.Info().Int("black", black).Int("white", white).Msg("move limit reached, sudden death")
	switch {
	case black > white:
		return Outcome{Winner: game.Black, Reason: "sudden death", Moves: moves}
	case white > black:
		return Outcome{Winner: game.White, Reason: "sudden death", Moves: moves}
	default:
		return Outcome{Draw: true, Reason: "sudden death", Moves: moves}
	}
}
