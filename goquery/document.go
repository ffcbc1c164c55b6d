// Package goquery implements HTML parsing, metadata extraction, and page
// rewriting on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
	"golang.org/x/net/html"
)

var _ dashdoc.Document = (*Document)(nil)
var _ dashdoc.DocumentParser = (*Parser)(nil)

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Parser parses HTML pages into Documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and parses an HTML page.
func (p *Parser) Parse(r io.Reader) (dashdoc.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// selection returns the goquery document behind a dashdoc.Document.
func selection(d dashdoc.Document) (*goquery.Document, error) {
	doc, ok := d.(*Document)
	if !ok || doc == nil || doc.doc == nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "document was not parsed by goquery.Parser")
	}
	return doc.doc, nil
}
