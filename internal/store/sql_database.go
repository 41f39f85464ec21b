package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/migrations"
)

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}

// DB is a pooled database handle bound to one SQL dialect. It is safe for
// concurrent use; repositories hold it and never keep per-request state.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection pool for dialect ("pgx" or "sqlite3").
func NewDB(conn *sql.DB, dialect string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case config.DriverPostgres:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: unsupported dialect %q", ErrStore, dialect)
	}

	return db, nil
}

// NewConnect opens the database named by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrStore, cfg.Driver)
	}
}

// Dialect returns the driver name the handle was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// wrapError converts a driver error into the package error vocabulary.
// Unique violations become [ErrUsernameAlreadyExists]; anything else is
// wrapped with [ErrStore] and kind.
func (db *DB) wrapError(ctx context.Context, funcName string, kind, err error) error {
	log := logger.FromContext(ctx)

	if db.errorClassificator.IsUniqueViolation(err) {
		log.Debug().Str("func", funcName).Msg("unique constraint violated")
		return ErrUsernameAlreadyExists
	}

	log.Err(err).
		Str("func", funcName).
		Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
		Msg(kind.Error())

	return fmt.Errorf("%w: %w: %w", ErrStore, kind, err)
}
