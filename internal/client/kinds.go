package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-weather-keeper/internal/adapter"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// kindCommands erases the sensor kind so commands can be chosen at runtime.
type kindCommands interface {
	public(ctx context.Context, api *adapter.WeatherClient, filter models.ReadingFilter) (any, error)
	protected(ctx context.Context, api *adapter.WeatherClient, filter models.ReadingFilter) (any, error)
	get(ctx context.Context, api *adapter.WeatherClient, id int64) (any, error)
	ingest(ctx context.Context, api *adapter.WeatherClient, params models.ProtectedReadingParams) (any, error)
	remove(ctx context.Context, api *adapter.WeatherClient, id int64) error
}

type kindClient[K models.SensorKind] struct{}

func (kindClient[K]) public(ctx context.Context, api *adapter.WeatherClient, filter models.ReadingFilter) (any, error) {
	return adapter.PublicReadings[K](ctx, api, filter)
}

func (kindClient[K]) protected(ctx context.Context, api *adapter.WeatherClient, filter models.ReadingFilter) (any, error) {
	return adapter.ProtectedReadings[K](ctx, api, filter)
}

func (kindClient[K]) get(ctx context.Context, api *adapter.WeatherClient, id int64) (any, error) {
	return adapter.ProtectedReading[K](ctx, api, id)
}

func (kindClient[K]) ingest(ctx context.Context, api *adapter.WeatherClient, params models.ProtectedReadingParams) (any, error) {
	return adapter.Ingest[K](ctx, api, params)
}

func (kindClient[K]) remove(ctx context.Context, api *adapter.WeatherClient, id int64) error {
	return adapter.DeleteReading[K](ctx, api, id)
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
