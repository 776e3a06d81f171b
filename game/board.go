package game

// Color identifies a player's marbles.
type Color int8

const (
	Black Color = iota
	White
)

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

const (
	marblesPerSide = 14
	winningScore   = 6
)

// Board holds marble occupancy plus the capture counters. Apply mutates
// in place; search code must work on a Copy so the live game state is
// never touched by simulation.
type Board struct {
	grid       map[Coord]Color
	blackScore int
	whiteScore int
}

func NewBoard() *Board {
	return &Board{grid: make(map[Coord]Color, 2*marblesPerSide)}
}

// InitStandard places the classic opening: rows of 5, 6 and 3 marbles
// per side, White at the top of the hexagon and Black at the bottom.
func (b *Board) InitStandard() {
	b.grid = make(map[Coord]Color, 2*marblesPerSide)
	b.blackScore, b.whiteScore = 0, 0

	for q := int8(0); q <= 4; q++ {
		b.grid[Coord{q, -4}] = White
	}
	for q := int8(-1); q <= 4; q++ {
		b.grid[Coord{q, -3}] = White
	}
	for q := int8(0); q <= 2; q++ {
		b.grid[Coord{q, -2}] = White
	}

	for q := int8(-4); q <= 0; q++ {
		b.grid[Coord{q, 4}] = Black
	}
	for q := int8(-4); q <= 1; q++ {
		b.grid[Coord{q, 3}] = Black
	}
	for q := int8(-2); q <= 0; q++ {
		b.grid[Coord{q, 2}] = Black
	}
}

// SetPiece places a marble directly; test and setup helper.
func (b *Board) SetPiece(c Coord, color Color) {
	b.grid[c] = color
}

// PieceAt returns the marble at c, if any. Off-board coordinates are
// never occupied.
func (b *Board) PieceAt(c Coord) (Color, bool) {
	color, ok := b.grid[c]
	return color, ok
}

// Occupied is the number of marbles on the board.
func (b *Board) Occupied() int { return len(b.grid) }

// Score is the number of opposing marbles the given color has pushed
// off the board.
func (b *Board) Score(c Color) int {
	if c == Black {
		return b.blackScore
	}
	return b.whiteScore
}

// Winner reports the side that has captured six marbles, if either has.
func (b *Board) Winner() (Color, bool) {
	if b.whiteScore >= winningScore {
		return White, true
	}
	if b.blackScore >= winningScore {
		return Black, true
	}
	return 0, false
}

// Pieces returns the coordinates of every marble of the given color.
func (b *Board) Pieces(color Color) []Coord {
	out := make([]Coord, 0, marblesPerSide)
	for c, col := range b.grid {
		if col == color {
			out = append(out, c)
		}
	}
	return out
}

// Copy deep-copies the board. Every simulated move in search runs on a
// copy.
func (b *Board) Copy() *Board {
	grid := make(map[Coord]Color, len(b.grid))
	for c, col := range b.grid {
		grid[c] = col
	}
	return &Board{grid: grid, blackScore: b.blackScore, whiteScore: b.whiteScore}
}

// Apply executes a validated move: all moving marbles (own chain plus
// any pushed chain) leave the grid, then land one cell along the move
// direction. A marble whose destination is off the board is captured
// and credits the opposing color. Apply trusts its input; run Validate
// first. The returned color is the winner once either score reaches
// six.
func (b *Board) Apply(m Move) (Color, bool) {
	type placement struct {
		piece Color
		dest  Coord
	}
	moved := make([]placement, 0, len(m.Marbles)+len(m.Pushed))

	for _, c := range m.Marbles {
		moved = append(moved, placement{b.grid[c], c.Add(m.Dir)})
		delete(b.grid, c)
	}
	for _, c := range m.Pushed {
		moved = append(moved, placement{b.grid[c], c.Add(m.Dir)})
		delete(b.grid, c)
	}

	for _, p := range moved {
		if p.dest.Valid() {
			b.grid[p.dest] = p.piece
		} else if p.piece == Black {
			b.whiteScore++
		} else {
			b.blackScore++
		}
	}

	return b.Winner()
}
