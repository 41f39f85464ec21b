package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-weather-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the credential store. Lookups report a missing
// account through the found flag, never through an error.
type AccountRepository interface {
	// FindByUsername returns the account with exactly this username.
	FindByUsername(ctx context.Context, username string) (models.Account, bool, error)

	// FindEnabledByUsername is FindByUsername restricted to enabled accounts.
	FindEnabledByUsername(ctx context.Context, username string) (models.Account, bool, error)

	// FindByID returns the account with the given identifier.
	FindByID(ctx context.Context, id int64) (models.Account, bool, error)

	// CountByUsername returns the number of accounts with this username.
	CountByUsername(ctx context.Context, username string) (int, error)

	// Insert persists a new account and returns it with the store-assigned
	// ID. A taken username yields [ErrUsernameAlreadyExists].
	Insert(ctx context.Context, account models.Account) (models.Account, error)

	// TouchLastLogin sets LastLoginAt to at on the row of account.ID, but only
	// while that row is still enabled and still holds account.SecretHash.
	// The flag is false when no such row exists.
	TouchLastLogin(ctx context.Context, account models.Account, at time.Time) (bool, error)

	// Update overwrites the mutable columns of the account with account.ID.
	Update(ctx context.Context, account models.Account) (models.Account, error)

	// Delete removes the account row.
	Delete(ctx context.Context, account models.Account) error
}

// ReadingRepository stores the readings of one sensor kind. Protected
// reads hit the kind's table; public reads hit its public view.
type ReadingRepository[K models.SensorKind] interface {
	Save(ctx context.Context, reading models.ProtectedReading[K]) (models.ProtectedReading[K], error)
	GetProtected(ctx context.Context, id int64) (models.ProtectedReading[K], bool, error)
	ListProtected(ctx context.Context, filter models.ReadingFilter) ([]models.ProtectedReading[K], error)
	ListPublic(ctx context.Context, filter models.ReadingFilter) ([]models.PublicReading[K], error)
	Delete(ctx context.Context, id int64) (bool, error)
}
