// Package lru provides a bounded, in-memory page cache backed by
// hashicorp's expirable LRU. Capacity bounds memory over the process
// lifetime; the TTL is the freshness window, fixed when an entry is
// written and never extended by reads.
package lru

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mpickford/folkweb"
)

// Defaults used when New is given non-positive values.
const (
	DefaultCapacity = 256
	DefaultTTL      = time.Hour
)

// Ensure Cache implements folkweb.Cache at compile time.
var _ folkweb.Cache = (*Cache)(nil)

// Cache is a size-bounded TTL cache for raw page bodies keyed by URL.
// It is safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[string, []byte]
}

// New creates a Cache holding at most capacity entries, each fresh for ttl
// after its write.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{lru: expirable.NewLRU[string, []byte](capacity, nil, ttl)}
}

// Get returns the cached body for key if present and still fresh.
func (c *Cache) Get(key string) ([]byte, bool) {
	return c.lru.Get(key)
}

// Set stores body under key, overwriting any previous entry and restarting
// its freshness window.
func (c *Cache) Set(key string, value []byte) {
	c.lru.Add(key, value)
}

// Len reports the number of live entries, for observability.
func (c *Cache) Len() int {
	return c.lru.Len()
}
