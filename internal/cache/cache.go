package cache

import (
	"sync"

	"github.com/five82/reposearch/internal/github"
)

// Cache maps normalized query keys to the response that answered them.
// Entries live for the life of the process: nothing expires or is evicted.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*github.SearchResponse
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*github.SearchResponse)}
}

// Get returns the response stored under key. A key that was never written
// reports false and a nil response.
func (c *Cache) Get(key string) (*github.SearchResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.entries[key]
	return resp, ok
}

// Put stores resp under key, replacing any previous entry. The pointer is
// stored as-is, so a later Get returns the same response.
func (c *Cache) Put(key string, resp *github.SearchResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[string]*github.SearchResponse)
	}
	c.entries[key] = resp
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
