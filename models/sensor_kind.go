package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSensorKind is returned by [ParseSensorKind] for unsupported names.
var ErrUnknownSensorKind = errors.New("unknown sensor kind")

// KindDescriptor describes one family of sensor readings and where its rows
// live in the database.
type KindDescriptor interface {
	// Name is the display name used in record renderings ("Humidity").
	Name() string

	// Slug is the lower-case identifier used in URLs and table names.
	Slug() string

	// Table is the table holding protected (full precision) readings.
	Table() string

	// PublicView is the view exposing only the public-safe columns.
	PublicView() string
}

// SensorKind is the type-parameter constraint tagging a reading with its
// sensor family. Readings of different kinds are distinct types and cannot
// be mixed up at compile time.
type SensorKind interface {
	Humidity | Pressure | Temperature
	KindDescriptor
}

// Humidity tags relative humidity readings.
type Humidity struct{}

// Pressure tags barometric pressure readings.
type Pressure struct{}

// Temperature tags air temperature readings.
type Temperature struct{}

func (Humidity) Name() string       { return "Humidity" }
func (Humidity) Slug() string       { return "humidity" }
func (Humidity) Table() string      { return "humidity" }
func (Humidity) PublicView() string { return "humidity_public_view" }

func (Pressure) Name() string       { return "Pressure" }
func (Pressure) Slug() string       { return "pressure" }
func (Pressure) Table() string      { return "pressure" }
func (Pressure) PublicView() string { return "pressure_public_view" }

func (Temperature) Name() string       { return "Temperature" }
func (Temperature) Slug() string       { return "temperature" }
func (Temperature) Table() string      { return "temperature" }
func (Temperature) PublicView() string { return "temperature_public_view" }

// KindOf returns the descriptor of the sensor kind K.
func KindOf[K SensorKind]() KindDescriptor {
	var k K
	return k
}

// SensorKinds lists every supported sensor kind.
func SensorKinds() []KindDescriptor {
	return []KindDescriptor{Humidity{}, Pressure{}, Temperature{}}
}

// ParseSensorKind resolves a kind by its slug or display name, ignoring case.
func ParseSensorKind(name string) (KindDescriptor, error) {
	for _, k := range SensorKinds() {
		if strings.EqualFold(name, k.Slug()) || strings.EqualFold(name, k.Name()) {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSensorKind, name)
}

// Concrete reading types per sensor kind.
type (
	ProtectedHumidity    = ProtectedReading[Humidity]
	PublicHumidity       = PublicReading[Humidity]
	ProtectedPressure    = ProtectedReading[Pressure]
	PublicPressure       = PublicReading[Pressure]
	ProtectedTemperature = ProtectedReading[Temperature]
	PublicTemperature    = PublicReading[Temperature]
)
