package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// readingRepository is the SQL implementation of [ReadingRepository] for
// sensor kind K. The table and public view names come from K.
type readingRepository[K models.SensorKind] struct {
	db     *DB
	kind   models.KindDescriptor
	logger *logger.Logger
}

// NewReadingRepository constructs a [ReadingRepository] for sensor kind K.
func NewReadingRepository[K models.SensorKind](db *DB, logger *logger.Logger) ReadingRepository[K] {
	kind := models.KindOf[K]()
	logger.Debug().Str("kind", kind.Slug()).Msg("creating reading repository")
	return &readingRepository[K]{
		db:     db,
		kind:   kind,
		logger: logger,
	}
}

// Save inserts reading into the kind's table, public coordinates included,
// and returns it carrying the store-assigned ID.
func (r *readingRepository[K]) Save(ctx context.Context, reading models.ProtectedReading[K]) (models.ProtectedReading[K], error) {
	funcName := r.funcName("Save")

	query, args, err := buildInsertReadingQuery(r.db.builder, r.kind.Table(), reading.Params(), reading.LatitudePublic(), reading.LongitudePublic())
	if err != nil {
		return models.ProtectedReading[K]{}, r.db.wrapError(ctx, funcName, ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return models.ProtectedReading[K]{}, r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", funcName).
		Int64("reading_id", id).
		Msg("reading saved")

	return reading.WithID(id), nil
}

func (r *readingRepository[K]) GetProtected(ctx context.Context, id int64) (models.ProtectedReading[K], bool, error) {
	funcName := r.funcName("GetProtected")

	query, args, err := buildGetReadingQuery(r.db.builder, r.kind.Table(), id)
	if err != nil {
		return models.ProtectedReading[K]{}, false, r.db.wrapError(ctx, funcName, ErrBuildingSQLQuery, err)
	}

	reading, err := scanProtectedReading[K](r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProtectedReading[K]{}, false, nil
	}
	if err != nil {
		return models.ProtectedReading[K]{}, false, r.db.wrapError(ctx, funcName, ErrScanningRow, err)
	}

	return reading, true, nil
}

func (r *readingRepository[K]) ListProtected(ctx context.Context, filter models.ReadingFilter) ([]models.ProtectedReading[K], error) {
	funcName := r.funcName("ListProtected")

	query, args, err := buildListReadingsQuery(r.db.builder, r.kind.Table(), protectedReadingColumns, filter.Normalized())
	if err != nil {
		return nil, r.db.wrapError(ctx, funcName, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}
	defer rows.Close()

	readings := make([]models.ProtectedReading[K], 0, filter.Normalized().Limit)
	for rows.Next() {
		reading, scanErr := scanProtectedReading[K](rows)
		if scanErr != nil {
			return nil, r.db.wrapError(ctx, funcName, ErrScanningRow, scanErr)
		}
		readings = append(readings, reading)
	}

	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(ctx, funcName, ErrScanningRows, err)
	}

	return readings, nil
}

// ListPublic reads from the kind's public view, which exposes no exact
// coordinates and no elevation.
func (r *readingRepository[K]) ListPublic(ctx context.Context, filter models.ReadingFilter) ([]models.PublicReading[K], error) {
	funcName := r.funcName("ListPublic")

	query, args, err := buildListReadingsQuery(r.db.builder, r.kind.PublicView(), publicReadingColumns, filter.Normalized())
	if err != nil {
		return nil, r.db.wrapError(ctx, funcName, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}
	defer rows.Close()

	readings := make([]models.PublicReading[K], 0, filter.Normalized().Limit)
	for rows.Next() {
		var p models.PublicReadingParams
		scanErr := rows.Scan(
			&p.ID,
			&p.Value,
			&p.ValueUnits,
			&p.ValueErrorRange,
			&p.LatitudePublic,
			&p.LongitudePublic,
			&p.Location.City,
			&p.Location.Province,
			&p.Location.Country,
			&p.Timestamp,
		)
		if scanErr != nil {
			return nil, r.db.wrapError(ctx, funcName, ErrScanningRow, scanErr)
		}
		readings = append(readings, models.NewPublicReading[K](p))
	}

	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(ctx, funcName, ErrScanningRows, err)
	}

	return readings, nil
}

func (r *readingRepository[K]) Delete(ctx context.Context, id int64) (bool, error) {
	funcName := r.funcName("Delete")

	query, args, err := buildDeleteReadingQuery(r.db.builder, r.kind.Table(), id)
	if err != nil {
		return false, r.db.wrapError(ctx, funcName, ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

func (r *readingRepository[K]) funcName(method string) string {
	return fmt.Sprintf("readingRepository[%s].%s", r.kind.Name(), method)
}

// scanProtectedReading rebuilds a reading through [models.NewProtectedReading]
// so rows holding illegal coordinates are reported instead of served.
func scanProtectedReading[K models.SensorKind](row rowScanner) (models.ProtectedReading[K], error) {
	var p models.ProtectedReadingParams
	err := row.Scan(
		&p.ID,
		&p.Value,
		&p.ValueUnits,
		&p.ValueErrorRange,
		&p.Latitude,
		&p.Longitude,
		&p.City,
		&p.Province,
		&p.Country,
		&p.Elevation,
		&p.ElevationUnits,
		&p.Timestamp,
	)
	if err != nil {
		return models.ProtectedReading[K]{}, err
	}

	return models.NewProtectedReading[K](p)
}
