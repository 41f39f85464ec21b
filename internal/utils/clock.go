package utils

import "time"

// Clock is the source of "now" for timestamps written by the services.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now implements [Clock].
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now implements [Clock].
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
