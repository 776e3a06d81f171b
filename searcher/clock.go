package searcher

import "time"

// deadlineInterval is how many explored nodes pass between deadline
// checks inside the recursion. Cancellation is cooperative: a single
// recursive call can overrun the budget slightly before the next check.
const deadlineInterval = 100

// deadlineClock threads an explicit wall-clock deadline through the
// recursion. Once expired it stays expired for the rest of the search.
type deadlineClock struct {
	deadline time.Time
	progress func()
	nodes    int
	expired  bool
}

// tick counts one node and reports whether the deadline has passed.
func (c *deadlineClock) tick() bool {
	if c.expired {
		return true
	}
	c.nodes++
	if c.nodes%deadlineInterval == 0 {
		if c.progress != nil {
			c.progress()
		}
		if !c.deadline.IsZero() && time.Now().After(c.deadline) {
			c.expired = true
		}
	}
	return c.expired
}
