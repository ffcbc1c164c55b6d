package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/dashdoc"
)

// Compile-time interface verification.
var _ dashdoc.IndexService = (*IndexService)(nil)

// IndexService implements dashdoc.IndexService using the Dash searchIndex table.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// CreateIndex inserts all entries in a single transaction. Triples already
// present are ignored.
func (s *IndexService) CreateIndex(ctx context.Context, entries []dashdoc.IndexEntry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO searchIndex (name, type, path)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Name, e.Type.String(), e.Path); err != nil {
			return fmt.Errorf("inserting %q: %w", e.Name, err)
		}
	}

	return tx.Commit()
}

// FindEntries retrieves entries matching the filter in insertion order.
func (s *IndexService) FindEntries(ctx context.Context, filter dashdoc.IndexFilter) ([]*dashdoc.IndexEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, type, path FROM searchIndex WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, filter.Type.String())
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*dashdoc.IndexEntry
	for rows.Next() {
		var e dashdoc.IndexEntry
		var typ string
		if err := rows.Scan(&e.Name, &typ, &e.Path); err != nil {
			return nil, err
		}
		if e.Type, err = dashdoc.ParseCategory(typ); err != nil {
			return nil, fmt.Errorf("failed to parse type: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
