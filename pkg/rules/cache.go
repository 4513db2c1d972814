package rules

import "sync"

// MemoryCache is a minimal ProgramCache backed by a map, intended for
// single-process use.
type MemoryCache struct {
	mu       sync.RWMutex
	programs map[string]any
}

// NewMemoryCache returns an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{programs: map[string]any{}}
}

// Get returns the cached program for key.
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	program, ok := c.programs[key]
	c.mu.RUnlock()
	return program, ok
}

// Set stores program under key, replacing any previous entry.
func (c *MemoryCache) Set(key string, program any) {
	c.mu.Lock()
	c.programs[key] = program
	c.mu.Unlock()
}
