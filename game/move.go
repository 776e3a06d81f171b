package game

import (
	"fmt"
	"sort"
)

// MoveType classifies how the selected line travels.
type MoveType int8

const (
	// Inline moves travel along the line's own axis; only inline moves
	// can push.
	Inline MoveType = iota
	// Broadside moves travel perpendicular to the line's axis into
	// empty cells.
	Broadside
)

func (t MoveType) String() string {
	if t == Inline {
		return "inline"
	}
	return "broadside"
}

// Move is a validated move: a value object with no board reference.
// For inline moves Marbles is ordered head first, the head being the
// marble adjacent to the target cell. Pushed lists the opposing chain
// displaced by a sumito, front first; it is empty for every other move.
type Move struct {
	Type    MoveType
	Dir     Coord
	Marbles []Coord
	Pushed  []Coord
}

// IsPush reports whether the move displaces opposing marbles.
func (m Move) IsPush() bool { return len(m.Pushed) > 0 }

func (m Move) String() string {
	return fmt.Sprintf("%s %v dir(%d,%d) push=%d", m.Type, m.Marbles, m.Dir.Q, m.Dir.R, len(m.Pushed))
}

// Signature is a comparable dedup key: the sorted marbles plus the
// direction. Two generator paths that discover the same move produce
// the same signature.
type Signature struct {
	Marbles [3]Coord
	Count   int8
	Dir     Coord
}

func (m Move) Signature() Signature {
	sorted := make([]Coord, len(m.Marbles))
	copy(sorted, m.Marbles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	sig := Signature{Count: int8(len(sorted)), Dir: m.Dir}
	copy(sig.Marbles[:], sorted)
	return sig
}
