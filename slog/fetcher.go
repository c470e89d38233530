// Package slog provides logging decorators for folkweb interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mpickford/folkweb"
)

// Ensure LoggingFetcher implements folkweb.Fetcher.
var _ folkweb.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every fetch.
type LoggingFetcher struct {
	next   folkweb.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next folkweb.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped Fetcher and logs path, duration, and
// outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, path string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, path)
	if err != nil {
		f.logger.Error("fetch",
			"path", path,
			"duration", time.Since(begin),
			"code", folkweb.ErrorCode(err),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetch",
		"path", path,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}
