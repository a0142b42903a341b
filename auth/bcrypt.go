package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is used when no work factor is configured.
const DefaultBcryptCost = 12

// PasswordHasher hashes and verifies passwords with a configurable
// bcrypt work factor.
type PasswordHasher struct {
	cost int
}

// Verify interface compliance
var _ PasswordAuthenticator = PasswordHasher{}

// NewPasswordHasher returns a hasher with the given cost. Costs outside
// the bcrypt range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return PasswordHasher{cost: cost}
}

// HashPassword will generate a password hash
func (h PasswordHasher) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hashed), err
}

// ComparePasswordAndHash will validate the given cleartext
// password matches the hashed password
func (h PasswordHasher) ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}
