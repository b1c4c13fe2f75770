// Package password provides one-way password hashing and verification.
//
// Hashing uses bcrypt: the produced string is self-describing (algorithm, cost,
// and salt are embedded), so verification needs no stored parameters beyond the
// hash itself. Two hashes of the same password never match each other but both
// verify against it.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt password hasher from config.
func NewHasher(cfg Config) *Hasher {
	cfg.ApplyDefaults()
	return &Hasher{cost: cfg.BcryptCost}
}

// Hash returns a salted hash of the password. It fails only on empty input or
// input beyond bcrypt's 72-byte limit.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password: empty password")
	}
	if len(password) > 72 {
		return "", errors.New("password: maximum length is 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. A malformed stored
// hash yields false rather than an error; the comparison is constant-time with
// respect to the digest.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
