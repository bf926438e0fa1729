package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := NewBookingReference()
		assert.True(t, strings.HasPrefix(ref, "BK-"))
		assert.Len(t, ref, 11)
		assert.Equal(t, ref, strings.ToUpper(ref))
		assert.False(t, seen[ref], "reference collision: %s", ref)
		seen[ref] = true
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64) // hex doubles the byte length

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}
