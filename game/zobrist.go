package game

// PositionHash identifies a board position for the transposition table
// and the repetition history. Collisions between distinct positions are
// an accepted risk of 64-bit keys and are not detected.
type PositionHash uint64

const splitmixGamma = 0x9e3779b97f4a7c15

var (
	zobristKeys map[Coord][2]uint64
	sideKey     uint64
)

func init() {
	// Fixed-seed splitmix64 keeps hashes stable across runs, which the
	// repetition history and reproducible experiments rely on.
	rng := splitmix64{state: splitmixGamma}
	zobristKeys = make(map[Coord][2]uint64, 61)
	for q := int8(-BoardRadius); q <= BoardRadius; q++ {
		for r := int8(-BoardRadius); r <= BoardRadius; r++ {
			c := Coord{q, r}
			if !c.Valid() {
				continue
			}
			var keys [2]uint64
			for i := range keys {
				k := rng.next()
				for k == 0 { // zero keys would not flip anything
					k = rng.next()
				}
				keys[i] = k
			}
			zobristKeys[c] = keys
		}
	}
	sideKey = rng.next()
}

// Hash XORs the key of every occupied cell. Positions with identical
// occupancy hash identically regardless of how they were reached.
func (b *Board) Hash() PositionHash {
	var h uint64
	for pos, color := range b.grid {
		h ^= zobristKeys[pos][color]
	}
	return PositionHash(h)
}

// SideHash folds the side-to-move bit into a position hash.
func SideHash(h PositionHash) PositionHash {
	return h ^ PositionHash(sideKey)
}

type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += splitmixGamma
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
