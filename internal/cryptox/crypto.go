// Package cryptox holds the password hashing primitives used by the auth
// service.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of a freshly generated password salt.
const SaltSize = 32

// HashPassword derives a 32-byte argon2id hash of password with salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// VerifyPassword reports whether password hashes to want under salt.
// The comparison runs in constant time.
func VerifyPassword(password []byte, salt []byte, want []byte) bool {
	return subtle.ConstantTimeCompare(HashPassword(password, salt), want) == 1
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	b := make([]byte, SaltSize)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Wipe zeroes b. Nil is fine.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
