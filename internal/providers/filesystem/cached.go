package filesystem

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached keeps recently read files in memory. A batch build reads shared
// base components once instead of once per child.
type Cached struct {
	inner Reader
	cache *lru.Cache[string, []byte]
}

// NewCached wraps inner with an LRU of size entries.
func NewCached(inner Reader, size int) (*Cached, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create file cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// ReadFile serves path from the cache or reads it through.
func (c *Cached) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if data, ok := c.cache.Get(path); ok {
		return data, nil
	}
	data, err := c.inner.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	c.cache.Add(path, data)
	return data, nil
}

// AddDependency forwards to the wrapped reader.
func (c *Cached) AddDependency(path string) {
	c.inner.AddDependency(path)
}

// Len returns the number of cached files.
func (c *Cached) Len() int {
	return c.cache.Len()
}
