package mock

import (
	"context"

	"github.com/mpickford/folkweb"
)

var _ folkweb.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of folkweb.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	return f.FetchFn(ctx, path)
}

var _ folkweb.Cache = (*Cache)(nil)

// Cache is a mock implementation of folkweb.Cache.
type Cache struct {
	GetFn func(key string) ([]byte, bool)
	SetFn func(key string, value []byte)
}

func (c *Cache) Get(key string) ([]byte, bool) {
	return c.GetFn(key)
}

func (c *Cache) Set(key string, value []byte) {
	c.SetFn(key, value)
}
