// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-weather-keeper/internal/crypto"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	hasher            crypto.SecretHasher
	clock             utils.Clock

	logger *logger.Logger
}

// NewAccountService returns an AccountService over accountRepository.
func NewAccountService(accountRepository store.AccountRepository, hasher crypto.SecretHasher, clock utils.Clock, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		clock:             clock,
		logger:            logger,
	}
}

// UsernameAvailable reports whether no account uses username.
func (s *accountService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	count, err := s.accountRepository.CountByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("counting accounts by username failed")
		return false, fmt.Errorf("counting accounts by username failed: %w", err)
	}

	return count == 0, nil
}

// CreateAccount stores a new account in the disabled state.
//
// A taken username is not an error: the result is (zero, false, nil) and the
// store is left untouched. The same outcome is reported when a concurrent
// creator wins the race and the insert trips the unique constraint.
func (s *accountService) CreateAccount(ctx context.Context, username, secret string) (models.Account, bool, error) {
	log := logger.FromContext(ctx)

	if username == "" || secret == "" {
		log.Error().Str("username", username).Msg("invalid account data provided")
		return models.Account{}, false, ErrInvalidDataProvided
	}

	available, err := s.UsernameAvailable(ctx, username)
	if err != nil {
		return models.Account{}, false, err
	}
	if !available {
		log.Info().Str("username", username).Msg("username is taken")
		return models.Account{}, false, nil
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		log.Err(err).Str("username", username).Msg("hashing secret failed")
		return models.Account{}, false, fmt.Errorf("hashing secret failed: %w", err)
	}

	created, err := s.accountRepository.Insert(ctx, models.Account{
		Username:   username,
		SecretHash: hash,
		Enabled:    false,
		CreatedAt:  s.clock.Now(),
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("username", username).Msg("username was taken concurrently")
		return models.Account{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("account creation failed")
		return models.Account{}, false, fmt.Errorf("account creation failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("account created")
	return created, true, nil
}

func (s *accountService) EnableAccount(ctx context.Context, username string) (models.Account, error) {
	return s.setEnabled(ctx, username, true)
}

func (s *accountService) DisableAccount(ctx context.Context, username string) (models.Account, error) {
	return s.setEnabled(ctx, username, false)
}

func (s *accountService) setEnabled(ctx context.Context, username string, enabled bool) (models.Account, error) {
	account, err := s.find(ctx, username)
	if err != nil {
		return models.Account{}, err
	}

	account.Enabled = enabled
	return s.update(ctx, account)
}

// DeleteAccount removes the account permanently.
func (s *accountService) DeleteAccount(ctx context.Context, username string) error {
	account, err := s.find(ctx, username)
	if err != nil {
		return err
	}

	err = s.accountRepository.Delete(ctx, account)
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", account.ID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}

// RotateSecret stores the hash of newSecret once currentSecret verifies
// against the stored hash. On ErrSecretMismatch nothing is written.
func (s *accountService) RotateSecret(ctx context.Context, username, currentSecret, newSecret string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if newSecret == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := s.find(ctx, username)
	if err != nil {
		return models.Account{}, err
	}

	ok, err := s.hasher.Verify(currentSecret, account.SecretHash)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("secret verification failed")
		return models.Account{}, fmt.Errorf("secret verification failed: %w", err)
	}
	if !ok {
		return models.Account{}, ErrSecretMismatch
	}

	hash, err := s.hasher.Hash(newSecret)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("hashing secret failed")
		return models.Account{}, fmt.Errorf("hashing secret failed: %w", err)
	}

	account.SecretHash = hash
	return s.update(ctx, account)
}

func (s *accountService) find(ctx context.Context, username string) (models.Account, error) {
	account, found, err := s.accountRepository.FindByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("account lookup failed")
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if !found {
		return models.Account{}, ErrNotFound
	}

	return account, nil
}

func (s *accountService) update(ctx context.Context, account models.Account) (models.Account, error) {
	updated, err := s.accountRepository.Update(ctx, account)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", account.ID).Msg("account update failed")
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}

	return updated, nil
}
