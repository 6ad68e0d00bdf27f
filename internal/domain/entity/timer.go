package entity

import "time"

// Timer is a status flag that stays on for a fixed duration after Start.
// It is expired by comparing a per-tick clock reading against the start timestamp.
type Timer struct {
	Active   bool
	Started  time.Time
	Duration time.Duration
}

// NewTimer creates an inactive timer with the given duration
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Start turns the flag on at now
func (t *Timer) Start(now time.Time) {
	t.Active = true
	t.Started = now
}

// Stop turns the flag off
func (t *Timer) Stop() {
	t.Active = false
}

// Expire turns the flag off once more than Duration has elapsed.
// Returns true on the tick the flag expires.
func (t *Timer) Expire(now time.Time) bool {
	if t.Active && now.Sub(t.Started) > t.Duration {
		t.Active = false
		return true
	}
	return false
}

// Elapsed returns the time since Start
func (t Timer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.Started)
}

// Within reports whether the flag is on and at most window has elapsed since Start
func (t Timer) Within(now time.Time, window time.Duration) bool {
	return t.Active && now.Sub(t.Started) <= window
}

// Cooldown gates an action until a deadline has passed
type Cooldown struct {
	ReadyAt time.Time
}

// Ready reports whether the deadline is strictly in the past.
// A zero Cooldown is always ready.
func (c Cooldown) Ready(now time.Time) bool {
	return now.After(c.ReadyAt)
}

// Trigger blocks the action for d from now
func (c *Cooldown) Trigger(now time.Time, d time.Duration) {
	c.ReadyAt = now.Add(d)
}

// Remaining returns how long until the action is ready again
func (c Cooldown) Remaining(now time.Time) time.Duration {
	if c.Ready(now) {
		return 0
	}
	return c.ReadyAt.Sub(now)
}
