package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The plaintext never appears in the hash.
	assert.NotContains(t, hash, "hunter2")

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("hunter2")
	require.NoError(t, err)
	second, err := HashPassword("hunter2")
	require.NoError(t, err)

	// Each hash carries its own salt.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "hunter2"))
	assert.True(t, CheckPassword(second, "hunter2"))
}
