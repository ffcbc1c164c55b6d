package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingIndexService implements dashdoc.IndexService.
var _ dashdoc.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging.
type LoggingIndexService struct {
	next   dashdoc.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next dashdoc.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// CreateIndex delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) CreateIndex(ctx context.Context, entries []dashdoc.IndexEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create index",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateIndex(ctx, entries)
}

// FindEntries delegates to the wrapped service.
func (s *LoggingIndexService) FindEntries(ctx context.Context, filter dashdoc.IndexFilter) ([]*dashdoc.IndexEntry, error) {
	return s.next.FindEntries(ctx, filter)
}
