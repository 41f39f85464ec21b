// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks everything the API server needs at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateAdmin(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// validateAdmin checks the storage and secret hashing settings shared by
// every binary.
func (cfg *StructuredConfig) validateAdmin() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.App.SecretHashAlgorithm {
	case HashAlgorithmBcrypt:
		if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
			return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
		}
	case HashAlgorithmArgon2id:
	default:
		return fmt.Errorf("%w: unknown secret hash algorithm %q", ErrInvalidAppConfigs, cfg.App.SecretHashAlgorithm)
	}

	return nil
}
