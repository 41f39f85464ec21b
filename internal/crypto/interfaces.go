package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_hasher_mock.go -package=mock

// SecretHasher turns account secrets into salted one-way hashes and checks
// candidate secrets against them. It knows nothing about accounts, storage
// or transport.
//
// The encoded form returned by Hash is self-describing (algorithm, cost and
// salt are embedded), so Verify needs only the candidate and the stored
// string.
type SecretHasher interface {
	// Hash derives a new encoded hash for secret using a fresh random salt.
	// Hashing the same secret twice yields different strings.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches encoded. A mismatch is
	// (false, nil); an encoded value this hasher cannot parse yields
	// ErrMalformedHash.
	Verify(secret, encoded string) (bool, error)
}
