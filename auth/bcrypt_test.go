package auth_test

import (
	"testing"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashPassword(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	t.Run("hashes a password", func(t *testing.T) {
		hash, err := hasher.HashPassword("secret123")

		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret123", hash)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		hash, err := hasher.HashPassword("")

		assert.Empty(t, hash)
		assert.Equal(t, auth.ErrNoEmptyString, err)
	})

	t.Run("same password hashes to different values", func(t *testing.T) {
		first, err := hasher.HashPassword("secret123")
		assert.NoError(t, err)

		second, err := hasher.HashPassword("secret123")
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestPasswordHasher_ComparePasswordAndHash(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.HashPassword("secret123")
	assert.NoError(t, err)

	t.Run("accepts matching password", func(t *testing.T) {
		assert.NoError(t, hasher.ComparePasswordAndHash("secret123", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		err := hasher.ComparePasswordAndHash("wrong-password", hash)
		assert.Equal(t, auth.ErrMismatchedHashAndPassword, err)
	})

	t.Run("rejects invalid hash", func(t *testing.T) {
		err := hasher.ComparePasswordAndHash("secret123", "not-a-bcrypt-hash")
		assert.Error(t, err)
	})
}

func TestNewPasswordHasher(t *testing.T) {
	t.Run("clamps out-of-range cost to the default", func(t *testing.T) {
		hasher := auth.NewPasswordHasher(100)

		hash, err := hasher.HashPassword("secret123")

		assert.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		assert.NoError(t, err)
		assert.Equal(t, auth.DefaultBcryptCost, cost)
	})
}
