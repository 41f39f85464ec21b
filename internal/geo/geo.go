// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package geo validates geographic coordinates and reduces their precision
// for anonymous consumers.
//
// Exact coordinates identify a sensor's installation site. Public records
// therefore carry coordinates coarsened to three decimal places (roughly
// 110 m of latitude), produced by [Coarsen].
package geo

import (
	"errors"
	"math"
)

const (
	// MinLatitude and MaxLatitude bound the legal latitude envelope in degrees.
	MinLatitude = -90.0
	MaxLatitude = 90.0

	// MinLongitude and MaxLongitude bound the legal longitude envelope in degrees.
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// publicScale is the multiplier that keeps three decimal places.
	publicScale = 1000.0
)

// ValidateLatitude returns a [*RangeError] when v lies outside [-90, 90].
// NaN is never a legal coordinate.
func ValidateLatitude(v float64) error {
	return checkRange(AxisLatitude, v, MinLatitude, MaxLatitude)
}

// ValidateLongitude returns a [*RangeError] when v lies outside [-180, 180].
func ValidateLongitude(v float64) error {
	return checkRange(AxisLongitude, v, MinLongitude, MaxLongitude)
}

// ValidateCoordinates checks both axes. Both failures are reported, latitude
// first.
func ValidateCoordinates(latitude, longitude float64) error {
	return errors.Join(ValidateLatitude(latitude), ValidateLongitude(longitude))
}

// Coarsen truncates v to three decimal places toward zero:
//
//	Coarsen(12.3456789)  == 12.345
//	Coarsen(-12.3456789) == -12.345
//	Coarsen(-0.0009)     == 0
//
// The result is never negative zero.
func Coarsen(v float64) float64 {
	truncated := math.Trunc(v*publicScale) / publicScale
	if truncated == 0 {
		return 0
	}
	return truncated
}

func checkRange(axis Axis, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &RangeError{Axis: axis, Value: v, Min: lo, Max: hi}
	}
	return nil
}
