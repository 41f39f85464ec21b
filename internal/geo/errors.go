// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package geo

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches every [*RangeError] via [errors.Is].
var ErrOutOfRange = errors.New("coordinate out of range")

// Axis names the coordinate a [RangeError] refers to.
type Axis string

const (
	AxisLatitude  Axis = "latitude"
	AxisLongitude Axis = "longitude"
)

// RangeError reports a coordinate outside its legal envelope.
type RangeError struct {
	Axis  Axis
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range (%g to %g): %g", e.Axis, e.Min, e.Max, e.Value)
}

// Is reports whether target is [ErrOutOfRange].
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
