package slideshow

import (
	"sync"
	"time"
)

// Clock supplies the current time to the controller. Tests use a manual clock
// so that elapsed time is fully deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. It is safe to advance from one
// goroutine while another reads it.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// centiseconds converts a duration into whole hundredths of a second
func centiseconds(d time.Duration) int64 {
	return int64(d / (10 * time.Millisecond))
}
