package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-weather-keeper/internal/config"
)

// NewSecretHasher picks the [SecretHasher] named by cfg.SecretHashAlgorithm.
func NewSecretHasher(cfg config.App) (SecretHasher, error) {
	switch cfg.SecretHashAlgorithm {
	case config.HashAlgorithmBcrypt, "":
		return NewBcryptHasher(cfg.BcryptCost), nil
	case config.HashAlgorithmArgon2id:
		return NewArgon2Hasher(DefaultArgon2Params()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.SecretHashAlgorithm)
	}
}
