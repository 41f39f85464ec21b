package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidStorageConfigs indicates a missing DSN or an unsupported
	// database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings or an unknown
	// secret hash algorithm.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// ErrInvalidClientConfigs indicates an unusable command-line client setup.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")
