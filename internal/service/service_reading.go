package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// readingService implements ReadingService for one sensor kind K.
type readingService[K models.SensorKind] struct {
	readingRepository store.ReadingRepository[K]

	logger *logger.Logger
}

// NewReadingService returns a ReadingService over readingRepository.
func NewReadingService[K models.SensorKind](readingRepository store.ReadingRepository[K], logger *logger.Logger) ReadingService[K] {
	return &readingService[K]{
		readingRepository: readingRepository,
		logger:            logger,
	}
}

// Ingest builds a protected reading from params and persists it.
//
// Coordinates outside the legal range fail with an error matching
// geo.ErrOutOfRange before the store is touched. params.ID is ignored; the
// store assigns it. The public half of the response is always produced by
// models.ProjectPublic.
func (s *readingService[K]) Ingest(ctx context.Context, params models.ProtectedReadingParams) (models.IngestResponse[K], error) {
	log := logger.FromContext(ctx).With().Str("kind", models.KindOf[K]().Slug()).Logger()

	params.ID = 0
	reading, err := models.NewProtectedReading[K](params)
	if err != nil {
		log.Warn().Err(err).Msg("rejected reading")
		return models.IngestResponse[K]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.readingRepository.Save(ctx, reading)
	if err != nil {
		log.Err(err).Msg("saving reading failed")
		return models.IngestResponse[K]{}, fmt.Errorf("saving reading failed: %w", err)
	}

	log.Debug().Int64("id", saved.ID()).Msg("reading stored")
	return models.IngestResponse[K]{
		Protected: saved,
		Public:    models.ProjectPublic(saved),
	}, nil
}

func (s *readingService[K]) Protected(ctx context.Context, id int64) (models.ProtectedReading[K], error) {
	reading, found, err := s.readingRepository.GetProtected(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("reading lookup failed")
		return models.ProtectedReading[K]{}, fmt.Errorf("reading lookup failed: %w", err)
	}
	if !found {
		return models.ProtectedReading[K]{}, ErrNotFound
	}

	return reading, nil
}

func (s *readingService[K]) ListProtected(ctx context.Context, filter models.ReadingFilter) ([]models.ProtectedReading[K], error) {
	readings, err := s.readingRepository.ListProtected(ctx, filter.Normalized())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing protected readings failed")
		return nil, fmt.Errorf("listing protected readings failed: %w", err)
	}

	return readings, nil
}

func (s *readingService[K]) ListPublic(ctx context.Context, filter models.ReadingFilter) ([]models.PublicReading[K], error) {
	readings, err := s.readingRepository.ListPublic(ctx, filter.Normalized())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing public readings failed")
		return nil, fmt.Errorf("listing public readings failed: %w", err)
	}

	return readings, nil
}

func (s *readingService[K]) Delete(ctx context.Context, id int64) error {
	deleted, err := s.readingRepository.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("reading deletion failed")
		return fmt.Errorf("reading deletion failed: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}
