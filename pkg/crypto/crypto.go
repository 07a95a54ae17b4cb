// Package crypto holds the small digest helpers used for token storage.
// Refresh tokens are never persisted in plaintext; sessions store their
// SHA-256 digest and lookups compare digests.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash returns the SHA-256 hex digest of value.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// HashEqual compares a value against a stored digest in constant time.
func HashEqual(digest, value string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(Hash(value))) == 1
}
