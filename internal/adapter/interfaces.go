// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-weather-keeper HTTP API.
//
// [WeatherClient] wraps a resty client bound to the server base URL and keeps
// the access token obtained by Login. Reading endpoints are typed by sensor
// kind, so they are exposed as generic functions taking the client:
// [PublicReadings], [ProtectedReadings], [ProtectedReading], [Ingest] and
// [DeleteReading].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-weather-keeper/models"
)

// AccountAPI is the account half of the server API.
type AccountAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, username, password string) (string, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.Account, error)

	// RotatePassword replaces the caller's own secret.
	RotatePassword(ctx context.Context, current, next string) (models.Account, error)
}
