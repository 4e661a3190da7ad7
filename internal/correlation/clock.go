package correlation

import "sync/atomic"

// Clock hands out strictly increasing sequence numbers. Tracked commands are
// stamped with it so their order does not depend on wall-clock time.
type Clock struct {
	seq atomic.Int64
}

// NewClock returns a clock whose first Next is 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next advances the clock and returns the new value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last value handed out, or 0.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
