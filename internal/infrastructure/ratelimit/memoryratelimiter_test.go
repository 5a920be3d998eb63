package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_AllowWithinLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 3, BurstSize: 1}

	for i := 0; i < 4; i++ {
		allowed, err := limiter.Allow("client-1", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be within limit+burst", i+1)
	}

	allowed, err := limiter.Allow("client-1", config)
	require.NoError(t, err)
	assert.False(t, allowed, "request past limit+burst is rejected")
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("client-1", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("client-2", config)
	require.NoError(t, err)
	assert.True(t, allowed, "a saturated key must not affect others")
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	_, err := limiter.Allow("client-1", config)
	require.NoError(t, err)
	allowed, err := limiter.Allow("client-1", config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset("client-1"))

	allowed, err = limiter.Allow("client-1", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_ZeroLimitDisables(t *testing.T) {
	limiter := NewMemoryRateLimiter()

	for i := 0; i < 50; i++ {
		allowed, err := limiter.Allow("client-1", RateLimitConfig{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
