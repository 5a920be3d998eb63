package ratelimit

type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int
}

// RateLimiter throttles requests per caller key. The redis implementation
// shares state across instances; the memory one is per-process.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	Reset(key string) error
}
