package cmd

import (
	"sync"
	"time"

	"github.com/leo-benz/ComposeLayoutDumper/internal/source"
)

// captureCacheEntry holds a loaded capture with its load time.
type captureCacheEntry struct {
	src      *source.Source
	loadedAt time.Time
}

// captureCache provides a TTL-based cache for parsed capture files, so
// repeated tool calls against the same capture skip the disk read.
type captureCache struct {
	mu      sync.Mutex
	entries map[string]captureCacheEntry
	ttl     time.Duration
}

// newCaptureCache creates a new cache. A ttl of 0 disables caching.
func newCaptureCache(ttl time.Duration) *captureCache {
	return &captureCache{
		entries: make(map[string]captureCacheEntry),
		ttl:     ttl,
	}
}

// Load returns a cached capture if within TTL, otherwise loads fresh.
func (c *captureCache) Load(path string) (*source.Source, error) {
	if c.ttl == 0 {
		return source.Load(path)
	}

	c.mu.Lock()
	if entry, ok := c.entries[path]; ok && time.Since(entry.loadedAt) < c.ttl {
		src := entry.src
		c.mu.Unlock()
		return src, nil
	}
	c.mu.Unlock()

	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = captureCacheEntry{src: src, loadedAt: time.Now()}
	c.mu.Unlock()

	return src, nil
}

// InvalidateAll clears the entire cache.
func (c *captureCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]captureCacheEntry)
}
