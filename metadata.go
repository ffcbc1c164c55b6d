package dashdoc

import (
	"io"
	"regexp"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Sanitize collapses every run of whitespace, newlines included, into a
// single space. Leading and trailing runs collapse too but are kept.
func Sanitize(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}

// PageMetadata holds the metadata extracted from a documentation page.
// BreadcrumbText and BreadcrumbURL are index-aligned.
type PageMetadata struct {
	Title          string   `json:"title"`
	BreadcrumbText []string `json:"breadcrumbText"`
	BreadcrumbURL  []string `json:"breadcrumbUrl"`
}

// Validate returns an error if the metadata contains invalid fields.
func (m *PageMetadata) Validate() error {
	if m.Title == "" {
		return Errorf(EINVALID, "page title required")
	}
	if len(m.BreadcrumbURL) == 0 {
		return Errorf(EINVALID, "page breadcrumb required")
	}
	if len(m.BreadcrumbText) != len(m.BreadcrumbURL) {
		return Errorf(EINVALID, "breadcrumb has %d names but %d urls", len(m.BreadcrumbText), len(m.BreadcrumbURL))
	}
	return nil
}

// Document is a parsed markup page. It is parsed once and shared by the
// metadata extractor and the rewriter.
type Document interface {
	// Render writes the document, including any rewrites, as HTML.
	Render(w io.Writer) error
}

// DocumentParser parses raw HTML into a Document.
type DocumentParser interface {
	Parse(r io.Reader) (Document, error)
}

// MetadataExtractor pulls the title and breadcrumb trail out of a page.
type MetadataExtractor interface {
	// ExtractMetadata returns the page metadata.
	// Returns ENOTFOUND if the page has no heading or breadcrumb block and
	// EINVALID if the breadcrumb block cannot be parsed.
	ExtractMetadata(doc Document) (*PageMetadata, error)
}
