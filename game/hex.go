package game

// BoardRadius is the hex radius of the playing area: 61 cells total.
const BoardRadius = 4

// Coord is an axial hex coordinate.
type Coord struct {
	Q, R int8
}

// Directions lists the six unit directions. The order matters: move
// classification scans it front to back, so it doubles as the tie-break
// for ambiguous selections.
var Directions = [6]Coord{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

func (c Coord) Add(d Coord) Coord { return Coord{c.Q + d.Q, c.R + d.R} }
func (c Coord) Sub(o Coord) Coord { return Coord{c.Q - o.Q, c.R - o.R} }
func (c Coord) Neg() Coord        { return Coord{-c.Q, -c.R} }

// Valid reports whether the coordinate lies on the board:
// max(|q|, |r|, |-q-r|) <= BoardRadius.
func (c Coord) Valid() bool {
	return abs(c.Q) <= BoardRadius && abs(c.R) <= BoardRadius && abs(-c.Q-c.R) <= BoardRadius
}

// Distance is the hex distance from the center cell.
func (c Coord) Distance() int8 {
	return (abs(c.Q) + abs(c.R) + abs(c.Q+c.R)) / 2
}

// Less orders coordinates by Q then R. Selections are sorted with it
// before line detection, and move signatures rely on it.
func (c Coord) Less(o Coord) bool {
	if c.Q != o.Q {
		return c.Q < o.Q
	}
	return c.R < o.R
}

// Neighbors returns the six adjacent coordinates in direction order.
// Some may lie off the board.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

func isDirection(d Coord) bool {
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

func abs(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
