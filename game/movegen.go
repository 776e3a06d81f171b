package game

// chainAxes are half of the six directions. Scanning only these when
// building 2- and 3-marble chains finds each chain exactly once.
var chainAxes = [3]Coord{{1, 0}, {0, 1}, {1, -1}}

// LegalMoves enumerates every legal move for color. Candidates all run
// through Validate, so the generator can never disagree with the rules.
// Moves are deduplicated by signature; order is generation order, and
// callers that need a particular ordering sort for themselves.
func LegalMoves(b *Board, color Color) []Move {
	var moves []Move
	seen := make(map[Signature]struct{})

	tryAdd := func(selected []Coord, target Coord) {
		m, ok := Validate(b, selected, target)
		if !ok {
			return
		}
		sig := m.Signature()
		if _, dup := seen[sig]; dup {
			return
		}
		seen[sig] = struct{}{}
		moves = append(moves, m)
	}

	pieces := b.Pieces(color)

	// Single-marble steps.
	for _, p := range pieces {
		for _, d := range Directions {
			tryAdd([]Coord{p}, p.Add(d))
		}
	}

	// 2- and 3-marble chains.
	for _, p := range pieces {
		for _, axis := range chainAxes {
			n1 := p.Add(axis)
			if c, ok := b.PieceAt(n1); !ok || c != color {
				continue
			}
			tryChain(tryAdd, []Coord{p, n1}, p, n1, axis)

			n2 := n1.Add(axis)
			if c, ok := b.PieceAt(n2); ok && c == color {
				tryChain(tryAdd, []Coord{p, n1, n2}, p, n2, axis)
			}
		}
	}

	return moves
}

// tryChain emits the candidates for one chain: inline out of either
// end, and broadside in the four directions not parallel to the chain
// axis.
func tryChain(tryAdd func([]Coord, Coord), chain []Coord, tail, tip Coord, axis Coord) {
	tryAdd(chain, tail.Sub(axis))
	tryAdd(chain, tip.Add(axis))
	for _, d := range Directions {
		if d == axis || d == axis.Neg() {
			continue
		}
		tryAdd(chain, tail.Add(d))
	}
}
