package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of dashdoc.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, doc dashdoc.Document) (*dashdoc.RewriteStats, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, doc dashdoc.Document) (*dashdoc.RewriteStats, error) {
	return r.RewriteFn(ctx, doc)
}

var _ dashdoc.ReferenceResolver = (*ReferenceResolver)(nil)

// ReferenceResolver is a mock implementation of dashdoc.ReferenceResolver.
type ReferenceResolver struct {
	ResolveFn func(ref string) (dashdoc.Reference, error)
}

func (r *ReferenceResolver) Resolve(ref string) (dashdoc.Reference, error) {
	return r.ResolveFn(ref)
}

var _ dashdoc.AssetStore = (*AssetStore)(nil)

// AssetStore is a mock implementation of dashdoc.AssetStore.
type AssetStore struct {
	StoreImageFn func(ctx context.Context, src string) (string, error)
}

func (s *AssetStore) StoreImage(ctx context.Context, src string) (string, error) {
	return s.StoreImageFn(ctx, src)
}
