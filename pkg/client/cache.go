package client

import (
	"strings"
	"sync"
)

// queryCache memoizes GET responses by request path. Invalidation is coarse:
// a mutation drops every cached entry sharing the resource prefix, the same
// way the web client invalidates its query keys.
type queryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string][]byte)}
}

func (c *queryCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *queryCache) set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
}

func (c *queryCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
