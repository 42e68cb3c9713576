package snake

import "time"

// Timer is a repeating cadence gate. Tick accumulates frame time and reports
// true on the frames where the period elapses.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a repeating timer with the given period.
// A non-positive period never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt and reports whether the period elapsed.
// A long frame that spans several periods still fires only once; the
// remainder carries over.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.period <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	return true
}
