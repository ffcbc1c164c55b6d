package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.MetadataExtractor = (*Extractor)(nil)

// Extractor reads page metadata: the first h1 as title and the
// schema.org BreadcrumbList embedded as JSON-LD as breadcrumb.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// breadcrumbList is the subset of a schema.org BreadcrumbList we read.
type breadcrumbList struct {
	ItemListElement []breadcrumbItem `json:"itemListElement"`
}

type breadcrumbItem struct {
	Name string          `json:"name"`
	Item json.RawMessage `json:"item"`
}

// url returns the item URL. The item is usually a plain URL string but
// may also be a node object carrying an @id.
func (i breadcrumbItem) url() (string, bool) {
	var s string
	if err := json.Unmarshal(i.Item, &s); err == nil {
		return s, s != ""
	}
	var node struct {
		ID string `json:"@id"`
	}
	if err := json.Unmarshal(i.Item, &node); err == nil {
		return node.ID, node.ID != ""
	}
	return "", false
}

// ExtractMetadata returns the title and breadcrumb of a page.
func (e *Extractor) ExtractMetadata(d dashdoc.Document) (*dashdoc.PageMetadata, error) {
	doc, err := selection(d)
	if err != nil {
		return nil, err
	}

	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return nil, dashdoc.Errorf(dashdoc.ENOTFOUND, "no heading found")
	}

	meta := &dashdoc.PageMetadata{
		Title: dashdoc.Sanitize(h1.Text()),
	}

	list, err := findBreadcrumb(doc)
	if err != nil {
		return nil, err
	}

	for i, item := range list.ItemListElement {
		u, ok := item.url()
		if !ok {
			return nil, dashdoc.Errorf(dashdoc.EINVALID, "breadcrumb item %d has no URL", i)
		}
		meta.BreadcrumbText = append(meta.BreadcrumbText, item.Name)
		meta.BreadcrumbURL = append(meta.BreadcrumbURL, u)
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return meta, nil
}

// findBreadcrumb returns the first JSON-LD block holding an item list.
func findBreadcrumb(doc *goquery.Document) (*breadcrumbList, error) {
	var parseErr error
	var found *breadcrumbList

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var list breadcrumbList
		if err := json.Unmarshal([]byte(strings.TrimSpace(sel.Text())), &list); err != nil {
			if parseErr == nil {
				parseErr = err
			}
			return true
		}
		if list.ItemListElement == nil {
			return true
		}
		found = &list
		return false
	})

	switch {
	case found != nil:
		return found, nil
	case parseErr != nil:
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "malformed breadcrumb block: %v", parseErr)
	default:
		return nil, dashdoc.Errorf(dashdoc.ENOTFOUND, "no breadcrumb block found")
	}
}
