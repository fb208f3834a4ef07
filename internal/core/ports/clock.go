package ports

import "time"

// Clock supplies the current time. Injecting it keeps time-dependent
// rules (peak-hour fees, campaign windows, working hours) deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock reading the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
