package game

import "sort"

// Validate classifies a candidate move: 1-3 selected own-color marbles
// plus a target cell. It returns the resulting Move and whether the
// request is legal. An illegal request is not an error; callers treat
// it as a no-op.
func Validate(b *Board, selected []Coord, target Coord) (Move, bool) {
	if len(selected) == 0 || len(selected) > 3 {
		return Move{}, false
	}

	// The move direction comes from the first selected marble adjacent
	// to the target, scanning marbles in input order and directions in
	// the fixed order. First match wins.
	var dir, head Coord
	found := false
scan:
	for _, s := range selected {
		for _, d := range Directions {
			if s.Add(d) == target {
				dir, head = d, s
				found = true
				break scan
			}
		}
	}
	if !found {
		return Move{}, false
	}

	// The selection must form a straight line of unit steps.
	lineDir := dir
	if len(selected) > 1 {
		sorted := make([]Coord, len(selected))
		copy(sorted, selected)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

		step := sorted[1].Sub(sorted[0])
		if !isDirection(step) {
			return Move{}, false
		}
		for i := 2; i < len(sorted); i++ {
			if sorted[i].Sub(sorted[i-1]) != step {
				return Move{}, false
			}
		}
		lineDir = step
	}

	if len(selected) > 1 && dir != lineDir && dir != lineDir.Neg() {
		return validateBroadside(b, selected, dir)
	}
	return validateInline(b, selected, head, target, dir)
}

// validateBroadside checks a sideways line move: every destination must
// be an empty cell on the board. Broadside moves cannot push.
func validateBroadside(b *Board, selected []Coord, dir Coord) (Move, bool) {
	for _, s := range selected {
		dest := s.Add(dir)
		if !dest.Valid() {
			return Move{}, false
		}
		if _, occupied := b.PieceAt(dest); occupied {
			return Move{}, false
		}
	}

	marbles := make([]Coord, len(selected))
	copy(marbles, selected)
	return Move{Type: Broadside, Dir: dir, Marbles: marbles}, true
}

func validateInline(b *Board, selected []Coord, head, target Coord, dir Coord) (Move, bool) {
	mover, ok := b.PieceAt(head)
	if !ok {
		return Move{}, false
	}

	// Walk back from the head against the move direction. Every
	// predecessor must be in the selection, or the line has a gap.
	chain := make([]Coord, 0, len(selected))
	chain = append(chain, head)
	curr := head
	for i := 1; i < len(selected); i++ {
		prev := curr.Sub(dir)
		if !containsCoord(selected, prev) {
			return Move{}, false
		}
		chain = append(chain, prev)
		curr = prev
	}

	targetPiece, occupied := b.PieceAt(target)
	if !occupied {
		// Off-board cells are "unoccupied" only as sumito beyond-cells.
		// A marble's own destination must be on the board, so edge
		// suicide is rejected here.
		if !target.Valid() {
			return Move{}, false
		}
		return Move{Type: Inline, Dir: dir, Marbles: chain}, true
	}
	if targetPiece == mover {
		return Move{}, false
	}

	// Sumito: trace the contiguous opposing chain. Legal only if the
	// mover's chain is strictly longer and the cell beyond the chain is
	// unoccupied; beyond-cells off the board count as unoccupied, which
	// is how marbles get pushed over the edge.
	var pushed []Coord
	curr = target
	for {
		p, occ := b.PieceAt(curr)
		if !occ || p == mover {
			break
		}
		pushed = append(pushed, curr)
		curr = curr.Add(dir)
	}
	if len(chain) <= len(pushed) || len(chain) > 3 {
		return Move{}, false
	}
	if _, blocked := b.PieceAt(curr); blocked {
		return Move{}, false
	}

	return Move{Type: Inline, Dir: dir, Marbles: chain, Pushed: pushed}, true
}

func containsCoord(coords []Coord, c Coord) bool {
	for _, v := range coords {
		if v == c {
			return true
		}
	}
	return false
}
