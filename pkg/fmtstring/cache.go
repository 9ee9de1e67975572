package fmtstring

import (
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
)

const cacheMaxEntries = 64

// Cache caches parsed format strings.
// Format strings are rendered once per displayed message line, the cache
// avoids reparsing the same strings over and over.
type Cache struct {
	cache *lru.Cache

	hits int
	miss int

	mu sync.Mutex
}

// CacheStats describes the usage of a Cache.
type CacheStats struct {
	Entries int
	Hits    int
	Miss    int
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{
		cache: lru.New(cacheMaxEntries),
	}
}

// Parse returns the parsed template for format, parsing it on the first use.
func (c *Cache) Parse(format string) (*Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result, exists := c.cache.Get(format); exists {
		c.hits++

		if tmpl, ok := result.(*Template); ok {
			return tmpl, nil
		}

		panic(fmt.Sprintf("format cache returned value of type %T", result))
	}

	c.miss++

	tmpl, err := Parse(format)
	if err != nil {
		return nil, err
	}

	c.cache.Add(format, tmpl)

	return tmpl, nil
}

// Stats returns the cache usage counters.
func (c *Cache) Stats() *CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &CacheStats{
		Entries: c.cache.Len(),
		Hits:    c.hits,
		Miss:    c.miss,
	}
}
