package searcher

import "abalone/game"

// Bound classifies a cached score relative to the window it was
// computed in.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot.
type Entry struct {
	Hash  game.PositionHash
	Score float64
	Depth int
	Kind  Bound
	used  bool
}

const defaultTableSize = 1 << 20

// Table is a bounded transposition table: a power-of-two slice indexed
// by masked hash. Stores always replace, so memory stays fixed no
// matter how long the search runs.
type Table struct {
	entries []Entry
	mask    uint64
}

func NewTable(size int) *Table {
	if size <= 0 {
		size = defaultTableSize
	}
	n := 1
	for n < size {
		n <<= 1
	}
	return &Table{entries: make([]Entry, n), mask: uint64(n - 1)}
}

// Probe returns the cached entry for hash if one exists at depth >= the
// remaining search depth. Shallower entries are not usable.
func (t *Table) Probe(hash game.PositionHash, depth int) (Entry, bool) {
	e := t.entries[uint64(hash)&t.mask]
	if e.used && e.Hash == hash && e.Depth >= depth {
		return e, true
	}
	return Entry{}, false
}

func (t *Table) Store(hash game.PositionHash, score float64, depth int, kind Bound) {
	t.entries[uint64(hash)&t.mask] = Entry{Hash: hash, Score: score, Depth: depth, Kind: kind, used: true}
}

func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Cap is the slot count.
func (t *Table) Cap() int { return len(t.entries) }
