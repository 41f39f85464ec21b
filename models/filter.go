package models

import "time"

const (
	// DefaultReadingLimit is applied when a filter does not set Limit.
	DefaultReadingLimit uint64 = 100

	// MaxReadingLimit caps the number of readings returned by one query.
	MaxReadingLimit uint64 = 1000
)

// ReadingFilter narrows reading queries. Zero fields do not filter.
type ReadingFilter struct {
	// From and To bound the reading timestamp, both inclusive.
	From time.Time
	To   time.Time

	City    string
	Country string

	Limit  uint64
	Offset uint64
}

// Normalized returns f with Limit defaulted and capped.
func (f ReadingFilter) Normalized() ReadingFilter {
	switch {
	case f.Limit == 0:
		f.Limit = DefaultReadingLimit
	case f.Limit > MaxReadingLimit:
		f.Limit = MaxReadingLimit
	}
	return f
}
