package service

import "errors"

var (
	// ErrAuthFailure is the only error Authenticate returns. It never wraps
	// the underlying cause.
	ErrAuthFailure = errors.New("invalid credential")

	// ErrNotFound is returned when an operation names an account or reading
	// that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSecretMismatch is returned by RotateSecret when the current secret
	// does not verify.
	ErrSecretMismatch = errors.New("secrets do not match")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
