// Package cache provides a small TTL cache used to keep rebuilt dashboard
// views for a short, bounded window between renders.
package cache

import (
	"sync"
	"time"
)

// TTLCache is a thread-safe cache whose entries expire after a fixed
// duration. Expiry is purely time-based; there is no manual invalidation in
// the render path.
type TTLCache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry[T]
	now   func() time.Time
}

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// New creates a TTL cache. The clock is injectable for tests; nil defaults
// to time.Now.
func New[T any](ttl time.Duration, now func() time.Time) *TTLCache[T] {
	if now == nil {
		now = time.Now
	}
	return &TTLCache[T]{
		ttl:   ttl,
		items: make(map[string]entry[T]),
		now:   now,
	}
}

// Get retrieves a value, reporting false for missing or expired keys.
// Expired entries are dropped on access.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, exists := c.items[key]
	if !exists {
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		return zero, false
	}
	return e.data, true
}

// Set stores a value with a fresh TTL.
func (c *TTLCache[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[T]{data: data, expiresAt: c.now().Add(c.ttl)}
}

// Delete removes a key from the cache.
func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// CleanExpired removes all expired entries and returns the count removed.
func (c *TTLCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Size returns the current number of items in the cache.
func (c *TTLCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
