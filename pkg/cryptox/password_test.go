package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	// Low cost keeps the test fast; the scheme is identical at any cost.
	hash, err := HashPassword("Abcdef1!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Abcdef1!", hash)

	require.NoError(t, VerifyPassword("Abcdef1!", hash))
	require.ErrorIs(t, VerifyPassword("Abcdef2!", hash), ErrMismatch)
	require.ErrorIs(t, VerifyPassword("", hash), ErrMismatch)
}

func TestHashPasswordSalts(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("Abcdef1!", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("Abcdef1!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHashPasswordDefaultsCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcdef1!", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, DefaultCost, cost)
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	err := VerifyPassword("Abcdef1!", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMismatch)
}
