package loader

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the number of loaded units kept per Cached loader.
const cacheSize = 512

// Cached wraps a Loader with an LRU cache keyed by cleaned absolute path, so
// repeated loads of the same path return the same value within a process
// lifetime. Absent (nil) results are cached as well.
type Cached struct {
	inner Loader
	cache *lru.Cache[string, any]
}

// NewCached wraps inner with a fresh cache.
func NewCached(inner Loader) *Cached {
	cache, _ := lru.New[string, any](cacheSize)
	return &Cached{inner: inner, cache: cache}
}

// Supports defers to the wrapped loader.
func (c *Cached) Supports(path string) bool {
	return c.inner.Supports(path)
}

// Load returns the cached value for the path, loading and caching on miss.
func (c *Cached) Load(absolutePath string) (any, error) {
	key := filepath.Clean(absolutePath)
	if value, ok := c.cache.Get(key); ok {
		return value, nil
	}

	value, err := c.inner.Load(absolutePath)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, value)
	return value, nil
}

var defaultLoader = NewCached(NewDefaultRegistry())

// Default returns the process-wide cached loader with the built-in decoders.
func Default() Loader {
	return defaultLoader
}
