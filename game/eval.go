package game

// Weights is the linear evaluation weight vector. Vectors are selected
// by search personality at configuration time; there is no runtime
// evaluation swapping.
type Weights struct {
	Material   float64
	Aggression float64
	Cohesion   float64
	Center     float64
	Danger     float64
}

// Weight presets. The balanced vector is the greedy/deepening default;
// the aggressive vector is the champion's, trading positional terms for
// contact.
var (
	BalancedWeights   = Weights{Material: 10000, Aggression: 500, Cohesion: 10, Center: 20, Danger: -100}
	AggressiveWeights = Weights{Material: 10000, Aggression: 2400, Cohesion: 10, Center: 3, Danger: -250}
)

// Scale multiplies selected terms; the tournament harness uses it to
// escalate stalled games.
func (w Weights) Scale(material, aggression float64) Weights {
	w.Material *= material
	w.Aggression *= aggression
	return w
}

// Breakdown labels the weighted evaluation terms for diagnostics.
// Repetition is only set by searches that apply the repetition penalty.
type Breakdown struct {
	Material   float64
	Aggression float64
	Cohesion   float64
	Center     float64
	Danger     float64
	Repetition float64
	Total      float64
}

// Evaluate scores the position from player's perspective in a single
// pass over the grid. move and maker attribute the aggression term: a
// push counts for the player that made it and against the player that
// suffered it, so the maker color is an explicit parameter rather than
// something inferred from the move. move may be nil for a static look.
func Evaluate(b *Board, player Color, move *Move, maker Color, w Weights) (float64, Breakdown) {
	var myPieces, opPieces int
	var center, cohesion, danger, aggression float64

	for pos, color := range b.grid {
		if color != player {
			opPieces++
			continue
		}
		myPieces++

		// Center control: 5 at the center cell down to 1 on the rim.
		centerScore := float64(5 - pos.Distance())
		center += centerScore

		neighbors := 0
		for _, d := range Directions {
			if c, ok := b.PieceAt(pos.Add(d)); ok && c == player {
				neighbors++
			}
		}
		cohesion += float64(neighbors)

		// Rim marbles are push targets; unsupported ones doubly so.
		if centerScore == 1 {
			if neighbors == 0 {
				danger += 2
			} else {
				danger += 0.5
			}
		}
	}

	if move != nil && move.IsPush() {
		base := 2 * float64(len(move.Pushed))
		if maker == player {
			aggression = base
		} else {
			aggression = -base
		}
	}

	bd := Breakdown{
		Material:   float64(myPieces-opPieces) * w.Material,
		Aggression: aggression * w.Aggression,
		Cohesion:   cohesion * w.Cohesion,
		Center:     center * w.Center,
		Danger:     danger * w.Danger,
	}
	bd.Total = bd.Material + bd.Aggression + bd.Cohesion + bd.Center + bd.Danger
	return bd.Total, bd
}
