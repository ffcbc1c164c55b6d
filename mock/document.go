package mock

import (
	"context"
	"io"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Document = (*Document)(nil)

// Document is a mock implementation of dashdoc.Document.
type Document struct {
	RenderFn func(w io.Writer) error
}

func (d *Document) Render(w io.Writer) error {
	return d.RenderFn(w)
}

var _ dashdoc.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of dashdoc.DocumentParser.
type DocumentParser struct {
	ParseFn func(r io.Reader) (dashdoc.Document, error)
}

func (p *DocumentParser) Parse(r io.Reader) (dashdoc.Document, error) {
	return p.ParseFn(r)
}

var _ dashdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of dashdoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, name string, doc dashdoc.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, name string, doc dashdoc.Document) error {
	return w.WriteDocumentFn(ctx, name, doc)
}
