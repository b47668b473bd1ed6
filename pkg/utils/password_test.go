package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret123", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("secret123", 4)
	require.NoError(t, err)
	second, err := HashPassword("secret123", 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPasswordClampsCost(t *testing.T) {
	// Out-of-range cost falls back to the bcrypt default instead of failing
	hash, err := HashPassword("secret123", 99)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret123", hash))
}
