// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnknownAccount is returned when a valid token names an account that
	// no longer exists.
	ErrUnknownAccount = errors.New("token subject no longer exists")

	// ErrAccountDisabled is returned when a valid token names a disabled
	// account.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidContentEncoding is returned when a gzip request body cannot
	// be read.
	ErrInvalidContentEncoding = errors.New("invalid gzip body")

	// ErrInvalidQueryParameter is returned when a query or path parameter
	// cannot be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
