// Package slog provides log/slog decorators for dashdoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingExtractor implements dashdoc.MetadataExtractor.
var _ dashdoc.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with debug logging.
type LoggingExtractor struct {
	next   dashdoc.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next dashdoc.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractMetadata delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractMetadata(doc dashdoc.Document) (meta *dashdoc.PageMetadata, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if meta != nil {
			attrs = append(attrs, "title", meta.Title, "breadcrumb", len(meta.BreadcrumbURL))
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		e.logger.Debug("extract metadata", attrs...)
	}(time.Now())
	return e.next.ExtractMetadata(doc)
}
