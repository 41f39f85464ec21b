package crypto

import "errors"

var (
	// ErrMalformedHash indicates a stored hash that cannot be parsed by the
	// configured hasher.
	ErrMalformedHash = errors.New("malformed secret hash")

	// ErrUnknownAlgorithm is returned by NewSecretHasher for an algorithm
	// name it does not support.
	ErrUnknownAlgorithm = errors.New("unknown secret hash algorithm")
)
