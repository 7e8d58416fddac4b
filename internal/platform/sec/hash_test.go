// Copyright (c) 2026 StoreRatings. All rights reserved.

package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "Sup3r$ecret", hash)
	assert.True(t, CheckPasswordHash("Sup3r$ecret", hash))
	assert.False(t, CheckPasswordHash("Sup3r$ecreT", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	second, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
