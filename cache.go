package hexpress

import (
	"strings"
	"sync"
	"time"
)

// PageCache is an in-memory cache of serialized route payloads with a TTL.
// Store writes are the source of truth; cached payloads may be briefly stale
// until the action layer invalidates the dependent routes.
type PageCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	body        []byte
	contentType string
	stored      time.Time
}

// NewPageCache creates a PageCache whose entries expire after ttl.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached payload and content type for key, if fresh.
func (c *PageCache) Get(key string) ([]byte, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Since(e.stored) >= c.ttl {
		return nil, "", false
	}
	return e.body, e.contentType, true
}

// Put stores a payload under key.
func (c *PageCache) Put(key, contentType string, body []byte) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{body: body, contentType: contentType, stored: time.Now()}
	c.mu.Unlock()
}

// Invalidate drops every entry matching one of the given route paths. A path
// matches its exact key plus any query-string or sub-path variants, so
// invalidating "/api/faqs" also drops "/api/faqs?page=homepage".
func (c *PageCache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		for _, p := range paths {
			if key == p || strings.HasPrefix(key, p+"?") || strings.HasPrefix(key, p+"/") {
				delete(c.entries, key)
				break
			}
		}
	}
}

// InvalidateAll clears the cache so the next read triggers a fresh build.
func (c *PageCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
