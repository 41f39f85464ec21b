package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-weather-keeper/models"
)

func kindPath(scope string, kind models.KindDescriptor) string {
	return "/weather/" + scope + "/" + kind.Slug()
}

// PublicReadings fetches the public readings of kind K. No token is needed.
func PublicReadings[K models.SensorKind](ctx context.Context, c *WeatherClient, filter models.ReadingFilter) ([]models.PublicReading[K], error) {
	var readings []models.PublicReading[K]

	resp, err := withFilter(c.request(ctx), filter).
		SetResult(&readings).
		Get(kindPath("public", models.KindOf[K]()))
	if err != nil {
		return nil, fmt.Errorf("public readings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return readings, nil
}

// ProtectedReadings fetches full-precision readings of kind K.
func ProtectedReadings[K models.SensorKind](ctx context.Context, c *WeatherClient, filter models.ReadingFilter) ([]models.ProtectedReading[K], error) {
	var readings []models.ProtectedReading[K]

	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := withFilter(req, filter).
		SetResult(&readings).
		Get(kindPath("protected", models.KindOf[K]()))
	if err != nil {
		return nil, fmt.Errorf("protected readings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return readings, nil
}

// ProtectedReading fetches one full-precision reading of kind K.
func ProtectedReading[K models.SensorKind](ctx context.Context, c *WeatherClient, id int64) (models.ProtectedReading[K], error) {
	var reading models.ProtectedReading[K]

	req, err := c.authedRequest(ctx)
	if err != nil {
		return reading, err
	}

	resp, err := req.
		SetResult(&reading).
		Get(kindPath("protected", models.KindOf[K]()) + "/" + strconv.FormatInt(id, 10))
	if err != nil {
		return reading, fmt.Errorf("protected reading request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return reading, err
	}

	return reading, nil
}

// Ingest submits a reading of kind K.
func Ingest[K models.SensorKind](ctx context.Context, c *WeatherClient, params models.ProtectedReadingParams) (models.IngestResponse[K], error) {
	var result models.IngestResponse[K]

	req, err := c.authedRequest(ctx)
	if err != nil {
		return result, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		SetResult(&result).
		Post(kindPath("protected", models.KindOf[K]()))
	if err != nil {
		return result, fmt.Errorf("ingest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

// DeleteReading removes one reading of kind K.
func DeleteReading[K models.SensorKind](ctx context.Context, c *WeatherClient, id int64) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(kindPath("protected", models.KindOf[K]()) + "/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete reading request: %w", err)
	}

	return mapHTTPError(resp)
}

func withFilter(req *resty.Request, filter models.ReadingFilter) *resty.Request {
	if !filter.From.IsZero() {
		req.SetQueryParam("from", filter.From.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		req.SetQueryParam("to", filter.To.Format(time.RFC3339))
	}
	if filter.City != "" {
		req.SetQueryParam("city", filter.City)
	}
	if filter.Country != "" {
		req.SetQueryParam("country", filter.Country)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	}
	return req
}
