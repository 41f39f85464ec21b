package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-weather-keeper/internal/geo"
)

// Location is the human readable place a reading was taken at.
type Location struct {
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

// ProtectedReadingParams carries the inputs of [NewProtectedReading].
type ProtectedReadingParams struct {
	// ID is the store-assigned identifier; zero for a reading not yet saved.
	ID int64 `json:"id,omitempty"`

	// Value is the instrument reading, expressed in ValueUnits.
	Value      float64 `json:"value"`
	ValueUnits string  `json:"value_units"`

	// ValueErrorRange is the fractional uncertainty of Value (0.025 = 2.5%).
	// Zero when the instrument reports none.
	ValueErrorRange float64 `json:"value_error_range"`

	// Latitude and Longitude are the exact installation coordinates.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Location

	Elevation      float64 `json:"elevation"`
	ElevationUnits string  `json:"elevation_units"`

	Timestamp time.Time `json:"timestamp"`
}

// PublicReadingParams carries the inputs of [NewPublicReading]. Coordinates
// must already be public-safe.
type PublicReadingParams struct {
	ID              int64
	Value           float64
	ValueUnits      string
	ValueErrorRange float64
	LatitudePublic  float64
	LongitudePublic float64
	Location        Location
	Timestamp       time.Time
}

// ProtectedReading is a full-precision sensor record restricted to
// authenticated access. It is immutable: the only way to obtain one is
// [NewProtectedReading], which guarantees legal coordinates and derives the
// public coordinates from them.
type ProtectedReading[K SensorKind] struct {
	id              int64
	value           float64
	valueUnits      string
	valueErrorRange float64
	latitude        float64
	longitude       float64
	latitudePublic  float64
	longitudePublic float64
	location        Location
	elevation       float64
	elevationUnits  string
	timestamp       time.Time
}

// NewProtectedReading validates the coordinates in p and builds a protected
// reading of kind K. On a coordinate outside its envelope it returns the
// zero reading and a [*geo.RangeError]; no partially built record escapes.
func NewProtectedReading[K SensorKind](p ProtectedReadingParams) (ProtectedReading[K], error) {
	if err := geo.ValidateLatitude(p.Latitude); err != nil {
		return ProtectedReading[K]{}, err
	}
	if err := geo.ValidateLongitude(p.Longitude); err != nil {
		return ProtectedReading[K]{}, err
	}

	return ProtectedReading[K]{
		id:              p.ID,
		value:           p.Value,
		valueUnits:      p.ValueUnits,
		valueErrorRange: p.ValueErrorRange,
		latitude:        p.Latitude,
		longitude:       p.Longitude,
		latitudePublic:  geo.Coarsen(p.Latitude),
		longitudePublic: geo.Coarsen(p.Longitude),
		location:        p.Location,
		elevation:       p.Elevation,
		elevationUnits:  p.ElevationUnits,
		timestamp:       p.Timestamp,
	}, nil
}

func (r ProtectedReading[K]) ID() int64                { return r.id }
func (r ProtectedReading[K]) Value() float64           { return r.value }
func (r ProtectedReading[K]) ValueUnits() string       { return r.valueUnits }
func (r ProtectedReading[K]) ValueErrorRange() float64 { return r.valueErrorRange }
func (r ProtectedReading[K]) Latitude() float64        { return r.latitude }
func (r ProtectedReading[K]) Longitude() float64       { return r.longitude }
func (r ProtectedReading[K]) LatitudePublic() float64  { return r.latitudePublic }
func (r ProtectedReading[K]) LongitudePublic() float64 { return r.longitudePublic }
func (r ProtectedReading[K]) Location() Location       { return r.location }
func (r ProtectedReading[K]) Elevation() float64       { return r.elevation }
func (r ProtectedReading[K]) ElevationUnits() string   { return r.elevationUnits }
func (r ProtectedReading[K]) Timestamp() time.Time     { return r.timestamp }

// Kind returns the sensor kind descriptor of the reading.
func (r ProtectedReading[K]) Kind() KindDescriptor { return KindOf[K]() }

// WithID returns a copy of r carrying the store-assigned identifier.
func (r ProtectedReading[K]) WithID(id int64) ProtectedReading[K] {
	r.id = id
	return r
}

// Params returns the inputs that rebuild r through [NewProtectedReading].
func (r ProtectedReading[K]) Params() ProtectedReadingParams {
	return ProtectedReadingParams{
		ID:              r.id,
		Value:           r.value,
		ValueUnits:      r.valueUnits,
		ValueErrorRange: r.valueErrorRange,
		Latitude:        r.latitude,
		Longitude:       r.longitude,
		Location:        r.location,
		Elevation:       r.elevation,
		ElevationUnits:  r.elevationUnits,
		Timestamp:       r.timestamp,
	}
}

// protectedReadingJSON is the wire shape of a protected reading.
type protectedReadingJSON struct {
	ProtectedReadingParams
	LatitudePublic  float64 `json:"latitude_public"`
	LongitudePublic float64 `json:"longitude_public"`
}

// MarshalJSON implements [json.Marshaler].
func (r ProtectedReading[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(protectedReadingJSON{
		ProtectedReadingParams: r.Params(),
		LatitudePublic:         r.latitudePublic,
		LongitudePublic:        r.longitudePublic,
	})
}

// UnmarshalJSON implements [json.Unmarshaler]. Decoded values pass through
// [NewProtectedReading]; public coordinates in the payload are ignored and
// recomputed from the exact ones.
func (r *ProtectedReading[K]) UnmarshalJSON(data []byte) error {
	var params ProtectedReadingParams
	if err := json.Unmarshal(data, &params); err != nil {
		return err
	}

	reading, err := NewProtectedReading[K](params)
	if err != nil {
		return fmt.Errorf("invalid %s reading: %w", KindOf[K]().Slug(), err)
	}

	*r = reading
	return nil
}

// PublicReading is the coarsened projection of a protected reading, safe for
// anonymous distribution. It has no exact coordinates and no elevation.
type PublicReading[K SensorKind] struct {
	ID              int64     `json:"id,omitempty"`
	Value           float64   `json:"value"`
	ValueUnits      string    `json:"value_units"`
	ValueErrorRange float64   `json:"value_error_range"`
	LatitudePublic  float64   `json:"latitude_public"`
	LongitudePublic float64   `json:"longitude_public"`
	Location
	Timestamp time.Time `json:"timestamp"`
}

// NewPublicReading builds a public reading from already coarsened inputs.
// Nothing is validated: the caller vouches that the inputs are public-safe.
// Ingestion must use [ProjectPublic] instead.
func NewPublicReading[K SensorKind](p PublicReadingParams) PublicReading[K] {
	return PublicReading[K]{
		ID:              p.ID,
		Value:           p.Value,
		ValueUnits:      p.ValueUnits,
		ValueErrorRange: p.ValueErrorRange,
		LatitudePublic:  p.LatitudePublic,
		LongitudePublic: p.LongitudePublic,
		Location:        p.Location,
		Timestamp:       p.Timestamp,
	}
}

// ProjectPublic derives the public reading of p from its public-safe fields
// only.
func ProjectPublic[K SensorKind](p ProtectedReading[K]) PublicReading[K] {
	return NewPublicReading[K](PublicReadingParams{
		ID:              p.id,
		Value:           p.value,
		ValueUnits:      p.valueUnits,
		ValueErrorRange: p.valueErrorRange,
		LatitudePublic:  p.latitudePublic,
		LongitudePublic: p.longitudePublic,
		Location:        p.location,
		Timestamp:       p.timestamp,
	})
}

// Kind returns the sensor kind descriptor of the reading.
func (r PublicReading[K]) Kind() KindDescriptor { return KindOf[K]() }
