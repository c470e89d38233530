package folkweb

import "context"

// FolkService exposes the six callable operations. Every method returns a
// single text payload; a lookup that matches nothing is reported as a
// readable "no results" payload with a nil error, so callers distinguish
// "ran fine, nothing matched" from a failed fetch by content.
type FolkService interface {
	// Search scans the site root, ballad index, and Laws index for links
	// whose visible text contains query, case-insensitively.
	Search(ctx context.Context, query string) (string, error)

	// Page fetches one document and returns its title, article text, and
	// related recordings.
	Page(ctx context.Context, path string) (string, error)

	// ChildBallads returns the ballad index, optionally filtered by a
	// numeric range ("12-40") or free text.
	ChildBallads(ctx context.Context, filter string) (string, error)

	// LawsIndex returns the Laws index, optionally filtered by code prefix
	// or free text.
	LawsIndex(ctx context.Context, filter string) (string, error)

	// ArtistDiscography resolves artist (a name or a site-absolute path) to
	// an artist page and returns its biography and record list.
	ArtistDiscography(ctx context.Context, artist string) (string, error)

	// RecordLabels returns the curated list of known record labels.
	// No fetch is involved.
	RecordLabels() string
}

// Warmer prefetches the index documents so a process's first search is
// served from cache.
type Warmer interface {
	Warm(ctx context.Context) error
}
