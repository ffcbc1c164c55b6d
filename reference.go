package dashdoc

import "context"

// Reference is the outcome of resolving a hyperlink or image target. It is
// either a RemoteReference or a LocalReference.
type Reference interface {
	reference()
}

// RemoteReference is a target that has no local copy and must be loaded
// from its canonical absolute URL.
type RemoteReference struct {
	URL string
}

// LocalReference is a target that exists in the mirror.
type LocalReference struct {
	// Path is the file path under the mirror root.
	Path string
}

func (RemoteReference) reference() {}
func (LocalReference) reference() {}

// ReferenceResolver decides whether a reference has a local copy.
type ReferenceResolver interface {
	// Resolve classifies ref. Absolute http(s) URLs are always remote and
	// come back in canonical form.
	// Returns EINVALID if ref cannot be parsed as a URL.
	Resolve(ref string) (Reference, error)
}

// AssetStore copies local images into the docset.
type AssetStore interface {
	// StoreImage copies the file at src into the docset image folder and
	// returns the file name it was stored under. Storing the same file
	// again yields the same name.
	StoreImage(ctx context.Context, src string) (string, error)
}

// RewriteStats counts what a rewrite did to a page.
type RewriteStats struct {
	Links   int // hyperlinks rewritten to absolute URLs
	Images  int // images rewritten to absolute URLs
	Copied  int // images copied into the docset
	Skipped int // references left unmodified because they could not be resolved
}

// Rewriter rewrites a page in place for use inside a docset: it drops
// scripts and stylesheets, adds the docset stylesheets, and resolves every
// hyperlink and image.
type Rewriter interface {
	Rewrite(ctx context.Context, doc Document) (*RewriteStats, error)
}

// DocumentWriter stores a rewritten page in the docset.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, name string, doc Document) error
}
