package store

import (
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// Storages groups every repository built over one database handle.
type Storages struct {
	AccountRepository     AccountRepository
	HumidityRepository    ReadingRepository[models.Humidity]
	PressureRepository    ReadingRepository[models.Pressure]
	TemperatureRepository ReadingRepository[models.Temperature]
}

// NewStorages builds the repositories over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:     NewAccountRepository(db, log),
		HumidityRepository:    NewReadingRepository[models.Humidity](db, log),
		PressureRepository:    NewReadingRepository[models.Pressure](db, log),
		TemperatureRepository: NewReadingRepository[models.Temperature](db, log),
	}
}
