package searcher

import "abalone/game"

const historyWindow = 6

// history is the short-term repetition window: hashes of the most
// recently applied positions, both sides' half-moves included.
type history struct {
	hashes []game.PositionHash
}

func (h *history) Push(hash game.PositionHash) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historyWindow {
		h.hashes = h.hashes[1:]
	}
}

func (h *history) Contains(hash game.PositionHash) bool {
	for _, v := range h.hashes {
		if v == hash {
			return true
		}
	}
	return false
}

func (h *history) Len() int { return len(h.hashes) }
