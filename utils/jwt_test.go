package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "owner")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "owner", role)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "user")
	require.NoError(t, err)

	_, _, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken(7, "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
