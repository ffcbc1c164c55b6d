package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of dashdoc.IndexService.
type IndexService struct {
	CreateIndexFn func(ctx context.Context, entries []dashdoc.IndexEntry) error
	FindEntriesFn func(ctx context.Context, filter dashdoc.IndexFilter) ([]*dashdoc.IndexEntry, error)
}

func (s *IndexService) CreateIndex(ctx context.Context, entries []dashdoc.IndexEntry) error {
	return s.CreateIndexFn(ctx, entries)
}

func (s *IndexService) FindEntries(ctx context.Context, filter dashdoc.IndexFilter) ([]*dashdoc.IndexEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

var _ dashdoc.ManifestWriter = (*ManifestWriter)(nil)

// ManifestWriter is a mock implementation of dashdoc.ManifestWriter.
type ManifestWriter struct {
	WriteManifestFn func(ctx context.Context, m dashdoc.Manifest) error
}

func (w *ManifestWriter) WriteManifest(ctx context.Context, m dashdoc.Manifest) error {
	return w.WriteManifestFn(ctx, m)
}
