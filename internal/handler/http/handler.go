package http

import (
	"time"

	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

type Handler struct {
	services *service.Services

	// readings maps a sensor kind slug to the endpoints serving that kind.
	readings map[string]readingEndpoints

	traceIDs       *utils.UUIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		readings:       newReadingEndpoints(services),
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

func newReadingEndpoints(services *service.Services) map[string]readingEndpoints {
	endpoints := make(map[string]readingEndpoints, 3)
	if services.HumidityService != nil {
		endpoints[models.Humidity{}.Slug()] = newReadingHandler(services.HumidityService)
	}
	if services.PressureService != nil {
		endpoints[models.Pressure{}.Slug()] = newReadingHandler(services.PressureService)
	}
	if services.TemperatureService != nil {
		endpoints[models.Temperature{}.Slug()] = newReadingHandler(services.TemperatureService)
	}
	return endpoints
}
