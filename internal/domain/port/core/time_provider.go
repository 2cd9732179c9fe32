package core

import "time"

// Duration is the elapsed time the domain measures through its clock
type Duration time.Duration

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock behind every stored timestamp: account and team creation,
// wallet transactions, and the contest lifecycle that compares it to match start times.
type TimeProvider interface {
	// Now returns the current instant in UTC
	Now() time.Time
	// Since returns how long ago t was on this clock
	Since(t time.Time) Duration
}
