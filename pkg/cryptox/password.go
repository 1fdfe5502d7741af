// Package cryptox holds the credential hashing primitives. Passwords are
// stored as bcrypt hashes; the encoded form carries its own salt and cost,
// so verification never needs extra parameters.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no explicit cost is
// configured. 2^10 rounds is the usual interactive-login tradeoff.
const DefaultCost = 10

// ErrMismatch reports that a plaintext password does not match a stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword returns the bcrypt hash of password at the given cost.
// A cost outside bcrypt's valid range falls back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// It returns ErrMismatch on a wrong password and passes through any other
// error (e.g. a malformed hash).
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
