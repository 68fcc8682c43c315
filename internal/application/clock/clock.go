package clock

import "time"

// Clock measures wall-clock time between ticks
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// New creates a clock reading the given time source; nil means time.Now
func New(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns the seconds since the previous tick.
// The first tick returns 0, as does a source that went backwards.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	elapsed := t.Sub(c.last).Seconds()
	c.last = t
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Reset makes the next tick return 0
func (c *Clock) Reset() {
	c.started = false
}
