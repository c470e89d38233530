package mock

import (
	"context"

	"github.com/mpickford/folkweb"
)

var _ folkweb.FolkService = (*FolkService)(nil)

// FolkService is a mock implementation of folkweb.FolkService.
type FolkService struct {
	SearchFn            func(ctx context.Context, query string) (string, error)
	PageFn              func(ctx context.Context, path string) (string, error)
	ChildBalladsFn      func(ctx context.Context, filter string) (string, error)
	LawsIndexFn         func(ctx context.Context, filter string) (string, error)
	ArtistDiscographyFn func(ctx context.Context, artist string) (string, error)
	RecordLabelsFn      func() string
}

func (s *FolkService) Search(ctx context.Context, query string) (string, error) {
	return s.SearchFn(ctx, query)
}

func (s *FolkService) Page(ctx context.Context, path string) (string, error) {
	return s.PageFn(ctx, path)
}

func (s *FolkService) ChildBallads(ctx context.Context, filter string) (string, error) {
	return s.ChildBalladsFn(ctx, filter)
}

func (s *FolkService) LawsIndex(ctx context.Context, filter string) (string, error) {
	return s.LawsIndexFn(ctx, filter)
}

func (s *FolkService) ArtistDiscography(ctx context.Context, artist string) (string, error) {
	return s.ArtistDiscographyFn(ctx, artist)
}

func (s *FolkService) RecordLabels() string {
	return s.RecordLabelsFn()
}

var _ folkweb.Warmer = (*Warmer)(nil)

// Warmer is a mock implementation of folkweb.Warmer.
type Warmer struct {
	WarmFn func(ctx context.Context) error
}

func (w *Warmer) Warm(ctx context.Context) error {
	return w.WarmFn(ctx)
}
