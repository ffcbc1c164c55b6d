package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingRewriter implements dashdoc.Rewriter.
var _ dashdoc.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with debug logging.
type LoggingRewriter struct {
	next   dashdoc.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next dashdoc.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs what it changed.
func (r *LoggingRewriter) Rewrite(ctx context.Context, doc dashdoc.Document) (stats *dashdoc.RewriteStats, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if stats != nil {
			attrs = append(attrs,
				"links", stats.Links,
				"images", stats.Images,
				"copied", stats.Copied,
				"skipped", stats.Skipped,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		r.logger.Debug("rewrite", attrs...)
	}(time.Now())
	return r.next.Rewrite(ctx, doc)
}
