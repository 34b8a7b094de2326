package docsite

import (
	"sync"
	"time"
)

// PageCache is an in-memory cache of rendered pages keyed by page and
// language, with a TTL. Every Invalidate starts a new generation; pages
// rendered under an older generation are not stored.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	ttl   time.Duration
	gen   uint64
}

type cachedPage struct {
	body    []byte
	fetched time.Time
}

// NewPageCache creates a PageCache whose entries expire after ttl.
// A non-positive ttl disables caching.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{pages: make(map[string]cachedPage), ttl: ttl}
}

func cacheKey(page, lang string) string {
	return page + "|" + lang
}

// Get returns the cached page body if present and fresh.
func (c *PageCache) Get(page, lang string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[cacheKey(page, lang)]
	if !ok || time.Since(p.fetched) >= c.ttl {
		return nil, false
	}
	return p.body, true
}

// Generation returns the current generation. Read it before reading the
// site config a page is rendered from.
func (c *PageCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// Put stores a rendered page body unless the cache was invalidated since
// gen was read.
func (c *PageCache) Put(page, lang string, gen uint64, body []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.pages[cacheKey(page, lang)] = cachedPage{body: body, fetched: time.Now()}
}

// Invalidate clears the cache so the next read renders fresh pages.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[string]cachedPage)
	c.gen++
	c.mu.Unlock()
}

// Len returns the number of cached entries, fresh or not.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
