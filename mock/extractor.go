package mock

import "github.com/fwojciec/dashdoc"

var _ dashdoc.MetadataExtractor = (*Extractor)(nil)

// Extractor is a mock implementation of dashdoc.MetadataExtractor.
type Extractor struct {
	ExtractMetadataFn func(doc dashdoc.Document) (*dashdoc.PageMetadata, error)
}

func (e *Extractor) ExtractMetadata(doc dashdoc.Document) (*dashdoc.PageMetadata, error) {
	return e.ExtractMetadataFn(doc)
}
