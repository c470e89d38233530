// Package http provides the caching HTTP implementation of folkweb.Fetcher.
// The site is static HTML, so a plain client is all that is needed; every
// successful response body is stored whole in the injected cache, keyed by
// full URL.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mpickford/folkweb"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond paces requests toward the public site. Burst is
// fixed at 1 so cold cache warm-ups cannot stampede it.
const DefaultRequestsPerSecond = 2.0

// Ensure Fetcher implements folkweb.Fetcher at compile time.
var _ folkweb.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages from the encyclopaedia site with a read-through
// cache. A fresh cache hit skips the network entirely; a miss performs
// exactly one request and stores the raw body on success. Failed fetches
// never touch the cache, so a transient error cannot poison an entry.
type Fetcher struct {
	client  *http.Client
	cache   folkweb.Cache
	limiter *rate.Limiter
	origin  string
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithOrigin overrides the site origin used to absolutize paths.
// Defaults to folkweb.SiteOrigin. Intended for fixture servers in tests.
func WithOrigin(origin string) Option {
	return func(f *Fetcher) {
		f.origin = strings.TrimSuffix(origin, "/")
	}
}

// WithRequestsPerSecond overrides the polite request rate toward the site.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a caching Fetcher backed by cache.
func NewFetcher(cache folkweb.Cache, opts ...Option) *Fetcher {
	f := &Fetcher{
		cache:   cache,
		origin:  folkweb.SiteOrigin,
		timeout: DefaultFetchTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the body for path, from cache when fresh.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	url := f.url(path)

	if body, ok := f.cache.Get(url); ok {
		return string(body), nil
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", folkweb.Errorf(folkweb.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", folkweb.Errorf(folkweb.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", folkweb.StatusErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", folkweb.Errorf(folkweb.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	f.cache.Set(url, body)

	return string(body), nil
}

// url absolutizes a site path against the configured origin. Full URLs pass
// through so the cache key and the request target stay identical.
func (f *Fetcher) url(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s%s", f.origin, path)
}
