// Package auth holds the privileged-caller guard. Authentication itself
// happens outside this service; the guard only answers whether an already
// extracted caller key belongs to an administrator.
package auth

import "sync"

// Guard is the allow list of privileged caller keys. It is constructed once
// at startup and passed to whatever needs to distinguish admin callers.
type Guard struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewGuard builds a guard from the initial allow list. Empty keys are ignored.
func NewGuard(keys []string) *Guard {
	g := &Guard{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		if k != "" {
			g.keys[k] = struct{}{}
		}
	}
	return g
}

// IsPrivileged reports whether key belongs to a privileged caller.
func (g *Guard) IsPrivileged(key string) bool {
	if key == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.keys[key]
	return ok
}

// Add inserts a key into the allow list.
func (g *Guard) Add(key string) {
	if key == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.keys[key] = struct{}{}
}

// Remove deletes a key from the allow list. Returns true if it was present.
func (g *Guard) Remove(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.keys[key]; !ok {
		return false
	}
	delete(g.keys, key)
	return true
}

// Len returns the number of allow-listed keys.
func (g *Guard) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.keys)
}
