// Package browse implements the six callable operations over the
// encyclopaedia site. Each operation composes one or two fetches with the
// matching extractors and formats a single text payload; the only shared
// state between calls is the fetcher's cache. The system is read-only.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpickford/folkweb"
	"github.com/mpickford/folkweb/goquery"
	"golang.org/x/sync/errgroup"
)

// maxSearchResults caps the merged, de-duplicated hit list.
const maxSearchResults = 25

// Ensure Service implements the domain interfaces at compile time.
var (
	_ folkweb.FolkService = (*Service)(nil)
	_ folkweb.Warmer      = (*Service)(nil)
)

// Service implements folkweb.FolkService against a live (or fixture) site.
type Service struct {
	Fetcher folkweb.Fetcher
}

// New creates a Service backed by fetcher.
func New(fetcher folkweb.Fetcher) *Service {
	return &Service{Fetcher: fetcher}
}

// indexDocuments are the documents scanned by Search, with the default
// classification for hits found on each.
var indexDocuments = []struct {
	path string
	typ  folkweb.ResultType
}{
	{folkweb.RootPath, folkweb.TypePage},
	{folkweb.BalladIndexPath, folkweb.TypeChildBallad},
	{folkweb.LawsIndexPath, folkweb.TypeLawsIndex},
}

// Search scans the three index documents in order, merges their hits,
// de-duplicates by resolved path (last seen wins), and caps the total.
func (s *Service) Search(ctx context.Context, query string) (string, error) {
	seen := make(map[string]int)
	var merged []folkweb.SearchResult

	for _, idx := range indexDocuments {
		html, err := s.Fetcher.Fetch(ctx, idx.path)
		if err != nil {
			return "", err
		}
		hits, err := goquery.ExtractSearchHits(html, idx.path, query, idx.typ)
		if err != nil {
			return "", err
		}
		for _, h := range hits {
			if i, ok := seen[h.Path]; ok {
				merged[i] = h
			} else {
				seen[h.Path] = len(merged)
				merged = append(merged, h)
			}
		}
	}

	if len(merged) > maxSearchResults {
		merged = merged[:maxSearchResults]
	}

	return folkweb.FormatSearchResults(merged, query), nil
}

// Page fetches one document and renders its article text.
func (s *Service) Page(ctx context.Context, path string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, path)
	if err != nil {
		return "", err
	}

	article, err := goquery.ExtractArticle(html)
	if err != nil {
		return "", err
	}
	if article.Title == "" {
		article.Title = path
	}

	return folkweb.FormatArticle(article), nil
}

// ChildBallads renders the ballad index, optionally filtered.
func (s *Service) ChildBallads(ctx context.Context, filter string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, folkweb.BalladIndexPath)
	if err != nil {
		return "", err
	}

	entries, err := goquery.ExtractBalladEntries(html, folkweb.BalladIndexPath)
	if err != nil {
		return "", err
	}

	return folkweb.FormatBallads(folkweb.FilterBallads(entries, filter), filter), nil
}

// LawsIndex renders the Laws index, optionally filtered.
func (s *Service) LawsIndex(ctx context.Context, filter string) (string, error) {
	html, err := s.Fetcher.Fetch(ctx, folkweb.LawsIndexPath)
	if err != nil {
		return "", err
	}

	entries, err := goquery.ExtractLawsEntries(html, folkweb.LawsIndexPath)
	if err != nil {
		return "", err
	}

	return folkweb.FormatLaws(folkweb.FilterLaws(entries, filter), filter), nil
}

// ArtistDiscography renders the biography and record list for an artist.
// A site-absolute argument is fetched directly; anything else is resolved
// through the site root's links, first textual match wins.
func (s *Service) ArtistDiscography(ctx context.Context, artist string) (string, error) {
	path := strings.TrimSpace(artist)
	name := path

	if !strings.HasPrefix(path, "/") {
		html, err := s.Fetcher.Fetch(ctx, folkweb.RootPath)
		if err != nil {
			return "", err
		}
		hits, err := goquery.ExtractSearchHits(html, folkweb.RootPath, path, folkweb.TypePage)
		if err != nil {
			return "", err
		}
		if len(hits) == 0 {
			return fmt.Sprintf("No artist matching %q found on the site index.", artist), nil
		}
		path = hits[0].Path
		name = hits[0].Text
	}

	html, err := s.Fetcher.Fetch(ctx, path)
	if err != nil {
		return "", err
	}

	discography, err := goquery.ExtractDiscography(html, path)
	if err != nil {
		return "", err
	}

	return folkweb.FormatDiscography(name, discography), nil
}

// RecordLabels renders the curated label list. No fetch is involved.
func (s *Service) RecordLabels() string {
	return folkweb.FormatLabels(folkweb.RecordLabels())
}

// Warm prefetches the index documents concurrently so the first search of a
// fresh process is served from cache.
func (s *Service) Warm(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, idx := range indexDocuments {
		g.Go(func() error {
			_, err := s.Fetcher.Fetch(gctx, idx.path)
			return err
		})
	}
	return g.Wait()
}
