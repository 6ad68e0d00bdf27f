package system

import (
	"sync"
	"time"
)

// Clock supplies the timestamp for a tick. The resolver reads it once per tick.
type Clock interface {
	Now() time.Time
}

// FrameClock advances by a fixed step per frame, so simulation time follows
// the tick count rather than the wall clock.
type FrameClock struct {
	now  time.Time
	step time.Duration
}

// NewFrameClock creates a clock starting at start that advances 1/fps per frame
func NewFrameClock(start time.Time, fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{
		now:  start,
		step: time.Second / time.Duration(fps),
	}
}

// Now returns the current frame time
func (c *FrameClock) Now() time.Time {
	return c.now
}

// Step returns the duration of one frame
func (c *FrameClock) Step() time.Duration {
	return c.step
}

// Advance moves to the next frame
func (c *FrameClock) Advance() {
	c.now = c.now.Add(c.step)
}

// ManualClock is a clock driven by hand, for tests and replays
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock stopped at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current time
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps to t
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
