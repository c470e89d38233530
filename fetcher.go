package folkweb

import "context"

// Fetcher retrieves raw HTML for a site path or full URL. Implementations
// are expected to serve repeated requests for the same page from a cache
// within its freshness window.
type Fetcher interface {
	// Fetch returns the page body for path, which may be site-absolute
	// ("/folk/...") or a full URL. The context controls timeout and
	// cancellation of any underlying network request.
	Fetch(ctx context.Context, path string) (html string, err error)
}

// Cache is a key/value store for raw page bodies, keyed by full URL.
// The freshness window is a property of the cache, fixed when an entry is
// written; reads never extend it. Entries are whole-value replacements,
// never partial mutations, so concurrent writers for the same key are safe
// (last writer wins).
type Cache interface {
	// Get returns the cached value for key if present and still fresh.
	Get(key string) (value []byte, ok bool)

	// Set stores value under key, overwriting any previous entry and
	// restarting its freshness window.
	Set(key string, value []byte)
}
