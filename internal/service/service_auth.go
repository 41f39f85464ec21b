package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-weather-keeper/internal/config"
	"github.com/MKhiriev/go-weather-keeper/internal/crypto"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/store"
	"github.com/MKhiriev/go-weather-keeper/internal/utils"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies secrets with a SecretHasher against the accounts kept by an
// AccountRepository and issues HS256 access tokens.
type authService struct {
	// accountRepository is the credential store.
	accountRepository store.AccountRepository

	// hasher verifies submitted secrets against stored hashes.
	hasher crypto.SecretHasher

	// clock stamps LastLoginAt.
	clock utils.Clock

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// dummyHash is verified against when no enabled account matches, so
	// unknown usernames cost the same hashing work as wrong secrets.
	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

// dummySecret seeds dummyHash; nothing ever authenticates with it.
const dummySecret = "go-weather-keeper/no-such-account"

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, hasher crypto.SecretHasher, clock utils.Clock, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            hasher,
		clock:             clock,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Authenticate checks username and secret against the enabled accounts.
//
// On success LastLoginAt is set to the current time and persisted before the
// updated account is returned. Only the login time is written, and only if
// the row is still enabled with the hash that was verified; an account
// disabled or re-keyed while the secret was being checked fails the login.
//
// Unknown or disabled accounts, wrong secrets, malformed stored hashes and
// store failures all yield exactly ErrAuthFailure; the cause is only logged.
func (a *authService) Authenticate(ctx context.Context, username, secret string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, found, err := a.accountRepository.FindEnabledByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("account lookup failed")
		return models.Account{}, ErrAuthFailure
	}
	if !found {
		a.verifyDummy(secret)
		log.Debug().Str("username", username).Msg("no enabled account with this username")
		return models.Account{}, ErrAuthFailure
	}

	ok, err := a.hasher.Verify(secret, account.SecretHash)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("secret verification failed")
		return models.Account{}, ErrAuthFailure
	}
	if !ok {
		log.Debug().Int64("id", account.ID).Msg("wrong secret")
		return models.Account{}, ErrAuthFailure
	}

	now := a.clock.Now()

	touched, err := a.accountRepository.TouchLastLogin(ctx, account, now)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("recording last login failed")
		return models.Account{}, ErrAuthFailure
	}
	if !touched {
		log.Info().Int64("id", account.ID).Msg("account changed during login")
		return models.Account{}, ErrAuthFailure
	}

	account.LastLoginAt = &now
	return account, nil
}

func (a *authService) verifyDummy(secret string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummySecret)
		if err != nil {
			a.logger.Err(err).Msg("hashing dummy secret failed")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != "" {
		_, _ = a.hasher.Verify(secret, a.dummyHash)
	}
}

// VerifyIdentity returns the account a token subject refers to, or
// ErrNotFound when it no longer exists. Store failures are returned wrapped.
func (a *authService) VerifyIdentity(ctx context.Context, subjectID int64) (models.Account, error) {
	account, found, err := a.accountRepository.FindByID(ctx, subjectID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", subjectID).Msg("account lookup by id failed")
		return models.Account{}, fmt.Errorf("account lookup by id failed: %w", err)
	}
	if !found {
		return models.Account{}, ErrNotFound
	}

	return account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
