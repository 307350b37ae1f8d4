package core

import "time"

// Clock reports the current time. Tests substitute a fake.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time { return time.Now() }

// Countdown is a cancellable one-shot deadline. It never fires on its own;
// owners poll Expired from their update loop.
type Countdown struct {
	deadline time.Time
	active   bool
}

// Start arms the countdown to expire d after now, replacing any pending
// deadline.
func (c *Countdown) Start(now time.Time, d time.Duration) {
	c.deadline = now.Add(d)
	c.active = true
}

// Cancel disarms the countdown.
func (c *Countdown) Cancel() {
	c.active = false
	c.deadline = time.Time{}
}

// Active reports whether a deadline is pending.
func (c *Countdown) Active() bool { return c.active }

// Remaining returns the time left before expiry, or zero when inactive.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	if !c.active {
		return 0
	}
	if left := c.deadline.Sub(now); left > 0 {
		return left
	}
	return 0
}

// Expired reports true exactly once, on the first poll at or after the
// deadline, and disarms the countdown.
func (c *Countdown) Expired(now time.Time) bool {
	if !c.active || now.Before(c.deadline) {
		return false
	}
	c.Cancel()
	return true
}
