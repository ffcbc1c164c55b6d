package dashdoc

import "context"

// IndexEntry is a row of the docset search index.
type IndexEntry struct {
	Name string   `json:"name"`
	Type Category `json:"type"`
	Path string   `json:"path"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *IndexEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "index entry name required")
	}
	if !e.Type.Valid() {
		return Errorf(EINVALID, "index entry %q has an invalid type", e.Name)
	}
	if e.Path == "" {
		return Errorf(EINVALID, "index entry %q path required", e.Name)
	}
	return nil
}

// Index accumulates index entries in page-processing order. It does not
// deduplicate; uniqueness is enforced by the IndexService.
type Index struct {
	entries []IndexEntry
}

// Add appends an entry.
func (idx *Index) Add(name string, typ Category, path string) {
	idx.entries = append(idx.entries, IndexEntry{Name: name, Type: typ, Path: path})
}

// Entries returns the accumulated entries.
func (idx *Index) Entries() []IndexEntry {
	return idx.entries
}

// Len returns the number of accumulated entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// IndexService persists the docset search index.
type IndexService interface {
	// CreateIndex stores all entries in one batch. Duplicate
	// (name, type, path) triples are stored once.
	CreateIndex(ctx context.Context, entries []IndexEntry) error

	// FindEntries retrieves entries matching the filter in insertion order.
	FindEntries(ctx context.Context, filter IndexFilter) ([]*IndexEntry, error)
}

// IndexFilter represents a filter for FindEntries.
type IndexFilter struct {
	Name *string   `json:"name"`
	Type *Category `json:"type"`
	Path *string   `json:"path"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
