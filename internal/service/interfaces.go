package service

import (
	"context"

	"github.com/MKhiriev/go-weather-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService checks credentials and resolves token subjects to accounts.
type AuthService interface {
	// Authenticate returns the enabled account whose secret matches, after
	// recording the login time. Every failure is ErrAuthFailure.
	Authenticate(ctx context.Context, username, secret string) (models.Account, error)

	// VerifyIdentity resolves a token subject to its current account.
	VerifyIdentity(ctx context.Context, subjectID int64) (models.Account, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService administers accounts.
type AccountService interface {
	UsernameAvailable(ctx context.Context, username string) (bool, error)

	// CreateAccount stores a new disabled account. The boolean is false when
	// the username is already taken, in which case nothing is written.
	CreateAccount(ctx context.Context, username, secret string) (models.Account, bool, error)

	EnableAccount(ctx context.Context, username string) (models.Account, error)
	DisableAccount(ctx context.Context, username string) (models.Account, error)
	DeleteAccount(ctx context.Context, username string) error

	// RotateSecret replaces the secret after checking the current one.
	RotateSecret(ctx context.Context, username, currentSecret, newSecret string) (models.Account, error)
}

// ReadingService ingests and serves the readings of one sensor kind.
type ReadingService[K models.SensorKind] interface {
	// Ingest validates and stores a reading, returning it together with its
	// public projection.
	Ingest(ctx context.Context, params models.ProtectedReadingParams) (models.IngestResponse[K], error)

	Protected(ctx context.Context, id int64) (models.ProtectedReading[K], error)
	ListProtected(ctx context.Context, filter models.ReadingFilter) ([]models.ProtectedReading[K], error)
	ListPublic(ctx context.Context, filter models.ReadingFilter) ([]models.PublicReading[K], error)
	Delete(ctx context.Context, id int64) error
}
