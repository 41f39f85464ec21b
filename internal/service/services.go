package service

import (
	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/crypto"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService

	HumidityService    ReadingService[models.Humidity]
	PressureService    ReadingService[models.Pressure]
	TemperatureService ReadingService[models.Temperature]
}

func NewServices(storages *store.Storages, hasher crypto.SecretHasher, clock utils.Clock, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.AccountRepository, hasher, clock, cfg, logger),
		AccountService:     NewAccountService(storages.AccountRepository, hasher, clock, logger),
		HumidityService:    NewReadingService(storages.HumidityRepository, logger),
		PressureService:    NewReadingService(storages.PressureRepository, logger),
		TemperatureService: NewReadingService(storages.TemperatureRepository, logger),
	}
}
