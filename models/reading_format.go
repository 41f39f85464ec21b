package models

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout renders reading timestamps in log output.
const timestampLayout = time.DateTime

// String renders every field of the reading. The layout is consumed by log
// processing, so the field order and precision are stable: values and
// elevation carry 4 decimals, coordinates 6, the error range is a percentage.
func (r ProtectedReading[K]) String() string {
	w := newRecordWriter("Protected"+KindOf[K]().Name(), r.id)
	w.line("value: %.4f %s +/- %.2f%%", r.value, r.valueUnits, r.valueErrorRange*100)
	w.line("timestamp: %s", r.timestamp.Format(timestampLayout))
	w.line("latitude: %.6f", r.latitude)
	w.line("latitude_public: %.6f", r.latitudePublic)
	w.line("longitude: %.6f", r.longitude)
	w.line("longitude_public: %.6f", r.longitudePublic)
	w.line("location: %s, %s %s", r.location.City, r.location.Province, r.location.Country)
	w.line("elevation: %.4f %s", r.elevation, r.elevationUnits)
	return w.String()
}

// String renders every field of the public reading using the same layout as
// [ProtectedReading.String].
func (r PublicReading[K]) String() string {
	w := newRecordWriter("Public"+KindOf[K]().Name(), r.ID)
	w.line("value: %.4f %s +/- %.2f%%", r.Value, r.ValueUnits, r.ValueErrorRange*100)
	w.line("timestamp: %s", r.Timestamp.Format(timestampLayout))
	w.line("latitude_public: %.6f", r.LatitudePublic)
	w.line("longitude_public: %.6f", r.LongitudePublic)
	w.line("location: %s, %s %s", r.Location.City, r.Location.Province, r.Location.Country)
	return w.String()
}

// recordWriter lays out a record as
//
//	<Name: id: 7
//	       value: ...
//	       ...>
//
// The id line is omitted for records that have not been saved yet.
type recordWriter struct {
	sb     strings.Builder
	indent string
	first  bool
}

func newRecordWriter(name string, id int64) *recordWriter {
	w := &recordWriter{first: true}
	header := "<" + name + ": "
	w.indent = strings.Repeat(" ", len(header))
	w.sb.WriteString(header)

	if id != 0 {
		w.line("id: %d", id)
	}

	return w
}

func (w *recordWriter) line(format string, args ...any) {
	if !w.first {
		w.sb.WriteString("\n")
		w.sb.WriteString(w.indent)
	}
	w.first = false
	fmt.Fprintf(&w.sb, format, args...)
}

func (w *recordWriter) String() string {
	return w.sb.String() + ">"
}
