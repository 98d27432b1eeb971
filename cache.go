package fluentsql

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is the interface for caching rendered statements.
// Users may implement it with their preferred caching solution
// (e.g., Redis, Memcached); NewLRUCache provides an in-memory one.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes all values with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

// CacheKey identifies a rendered query. Variant distinguishes producers
// that render the same query differently for one dialect and table.
type CacheKey struct {
	Dialect string
	Table   string
	Variant string
	Query   string
}

// String returns the string representation of the cache key.
func (k CacheKey) String() string {
	return k.Dialect + ":" + k.Table + ":" + k.Variant + ":" + k.Query
}

// LRUCache is a size-bounded in-memory Cache.
// Entries are evicted by recency only; the ttl passed to Set is ignored.
type LRUCache struct {
	entries *lru.Cache[string, []byte]
}

// NewLRUCache returns a Cache holding at most size entries.
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{entries: c}, nil
}

// Get implements Cache.
func (c *LRUCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Set implements Cache.
func (c *LRUCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries.Add(key, value)
	return nil
}

// Delete implements Cache.
func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}

// DeletePrefix implements Cache.
func (c *LRUCache) DeletePrefix(_ context.Context, prefix string) error {
	for _, k := range c.entries.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.entries.Remove(k)
		}
	}
	return nil
}

// Clear implements Cache.
func (c *LRUCache) Clear(_ context.Context) error {
	c.entries.Purge()
	return nil
}

// Len returns the number of cached entries.
func (c *LRUCache) Len() int {
	return c.entries.Len()
}

var _ Cache = (*LRUCache)(nil)
