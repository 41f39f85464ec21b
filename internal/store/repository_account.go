// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "accounts" table. It works with both supported dialects; the
// placeholder format comes from the [DB] it holds.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	return r.findOne(ctx, "accountRepository.FindByUsername", squirrel.Eq{"username": username}, false)
}

func (r *accountRepository) FindEnabledByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	return r.findOne(ctx, "accountRepository.FindEnabledByUsername", squirrel.Eq{"username": username}, true)
}

func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, bool, error) {
	return r.findOne(ctx, "accountRepository.FindByID", squirrel.Eq{"id": id}, false)
}

func (r *accountRepository) findOne(ctx context.Context, funcName string, where squirrel.Sqlizer, onlyEnabled bool) (models.Account, bool, error) {
	query, args, err := buildFindAccountQuery(r.db.builder, where, onlyEnabled)
	if err != nil {
		return models.Account{}, false, r.db.wrapError(ctx, funcName, ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}

	return account, true, nil
}

func (r *accountRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	query, args, err := buildCountByUsernameQuery(r.db.builder, username)
	if err != nil {
		return 0, r.db.wrapError(ctx, "accountRepository.CountByUsername", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, r.db.wrapError(ctx, "accountRepository.CountByUsername", ErrExecutingQuery, err)
	}

	return count, nil
}

// Insert persists account and returns it with the server-assigned ID and
// creation time.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver error → wrapped [ErrStore].
func (r *accountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.db.builder, account)
	if err != nil {
		return models.Account{}, r.db.wrapError(ctx, "accountRepository.Insert", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
		return models.Account{}, r.db.wrapError(ctx, "accountRepository.Insert", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "accountRepository.Insert").Int64("account_id", account.ID).Msg("account inserted")
	return account, nil
}

func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	query, args, err := buildUpdateAccountQuery(r.db.builder, account)
	if err != nil {
		return models.Account{}, r.db.wrapError(ctx, "accountRepository.Update", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, "accountRepository.Update", query, args); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// TouchLastLogin records a login without rewriting any other column, so an
// enable, disable or secret change committed after the caller read account
// is never undone. Zero affected rows means the account was deleted,
// disabled or re-keyed in the meantime.
func (r *accountRepository) TouchLastLogin(ctx context.Context, account models.Account, at time.Time) (bool, error) {
	query, args, err := buildTouchLastLoginQuery(r.db.builder, account, at)
	if err != nil {
		return false, r.db.wrapError(ctx, "accountRepository.TouchLastLogin", ErrBuildingSQLQuery, err)
	}

	err = r.execAffectingOne(ctx, "accountRepository.TouchLastLogin", query, args)
	if errors.Is(err, ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *accountRepository) Delete(ctx context.Context, account models.Account) error {
	query, args, err := buildDeleteAccountQuery(r.db.builder, account.ID)
	if err != nil {
		return r.db.wrapError(ctx, "accountRepository.Delete", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "accountRepository.Delete", query, args)
}

func (r *accountRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ctx, funcName, ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account     models.Account
		lastLoginAt sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.SecretHash,
		&account.Enabled,
		&account.CreatedAt,
		&lastLoginAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	if lastLoginAt.Valid {
		t := lastLoginAt.Time
		account.LastLoginAt = &t
	}

	return account, nil
}
