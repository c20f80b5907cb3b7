// Package clock supplies the time source used to compute node ages.
//
// The report captures the current time exactly once per run and passes it on
// explicitly. Tests swap in a FixedClock so ages are deterministic.
package clock

import (
	"time"
)

// Clock provides the current time.
type Clock interface {
	// Now returns the current time according to this clock
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock with a frozen time value.
type FixedClock struct {
	current time.Time
}

// Unix creates a clock frozen at the given epoch second.
func Unix(sec int64) *FixedClock {
	return &FixedClock{current: time.Unix(sec, 0)}
}

// Now returns the frozen time.
func (c *FixedClock) Now() time.Time {
	return c.current
}
