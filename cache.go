package biomark

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultCacheExpiration is how long a cached parse stays warm.
	DefaultCacheExpiration = 5 * time.Minute

	parseKeyPrefix   = "p:"
	verdictKeyPrefix = "v:"
)

// Cache memoizes Parse and Validate keyed on raw text, for editors that
// re-run the pipeline on every keystroke. Results are identical to the
// uncached functions. It is safe for concurrent use.
type Cache struct {
	cache *gocache.Cache
	opts  []ValidateOption
}

// NewCache returns a Cache whose entries expire after expiration. A
// non-positive expiration uses DefaultCacheExpiration. opts apply to every
// Validate call made through the cache.
func NewCache(expiration time.Duration, opts ...ValidateOption) *Cache {
	if expiration <= 0 {
		expiration = DefaultCacheExpiration
	}
	return &Cache{
		cache: gocache.New(expiration, 2*expiration),
		opts:  opts,
	}
}

// Parse returns ParseString(raw). The returned Document is owned by the
// caller.
func (c *Cache) Parse(raw string) Document {
	key := parseKeyPrefix + raw
	if v, ok := c.cache.Get(key); ok {
		if doc, ok := v.(Document); ok {
			return doc.Clone()
		}
	}
	doc := ParseString(raw)
	c.cache.SetDefault(key, doc.Clone())
	return doc
}

// Validate returns Validate(raw) with the cache's options.
func (c *Cache) Validate(raw string) Verdict {
	key := verdictKeyPrefix + raw
	if v, ok := c.cache.Get(key); ok {
		if verdict, ok := v.(Verdict); ok {
			return verdict
		}
	}
	verdict := Validate(raw, c.opts...)
	c.cache.SetDefault(key, verdict)
	return verdict
}

// Len returns the number of cached results, expired ones included until the
// next cleanup.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every cached result.
func (c *Cache) Flush() {
	c.cache.Flush()
}
