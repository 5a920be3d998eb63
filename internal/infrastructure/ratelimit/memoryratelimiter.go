package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is the single-instance fallback when redis is not
// configured. Same sliding-window semantics as the redis implementation.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	if config.RequestsPerMinute <= 0 {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-time.Minute)

	kept := l.entries[key][:0]
	for _, t := range l.entries[key] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}

	limit := config.RequestsPerMinute + config.BurstSize
	allowed := len(kept) < limit

	kept = append(kept, now)
	l.entries[key] = kept

	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}
