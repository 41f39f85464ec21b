// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2SaltLen = 16

// Bounds applied to parameters read back from a stored hash. The lower ones
// follow RFC 9106; the upper ones keep a tampered row from stalling or
// exhausting the process during Verify.
const (
	argon2MinSaltLen = 8
	argon2MinKeyLen  = 4
	argon2MaxKeyLen  = 64
	argon2MaxTime    = 32
	argon2MaxMemory  = 1 << 20 // KiB, 1 GiB
)

// Argon2Params holds the Argon2id tuning parameters. They are written into
// every encoded hash, so changing them only affects new hashes.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
	}
}

type argon2Hasher struct {
	params Argon2Params
	rand   io.Reader
}

// NewArgon2Hasher returns a [SecretHasher] producing PHC formatted Argon2id
// strings: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>, with salt and hash
// in unpadded standard base64.
func NewArgon2Hasher(params Argon2Params) SecretHasher {
	return &argon2Hasher{params: params, rand: rand.Reader}
}

func (h *argon2Hasher) Hash(secret string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(secret, encoded string) (bool, error) {
	params, salt, key, err := decodeArgon2(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(secret), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeArgon2(encoded string) (Argon2Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if err := checkArgon2Params(params); err != nil {
		return Argon2Params{}, nil, nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < argon2MinSaltLen {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: bad salt", ErrMalformedHash)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) < argon2MinKeyLen || len(key) > argon2MaxKeyLen {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: bad key", ErrMalformedHash)
	}
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}

func checkArgon2Params(p Argon2Params) error {
	switch {
	case p.Time < 1 || p.Time > argon2MaxTime:
		return fmt.Errorf("%w: time cost %d out of range", ErrMalformedHash, p.Time)
	case p.Threads < 1:
		return fmt.Errorf("%w: parallelism %d out of range", ErrMalformedHash, p.Threads)
	case p.Memory < 8*uint32(p.Threads) || p.Memory > argon2MaxMemory:
		return fmt.Errorf("%w: memory cost %d KiB out of range", ErrMalformedHash, p.Memory)
	}
	return nil
}
