package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingManifestWriter implements dashdoc.ManifestWriter.
var _ dashdoc.ManifestWriter = (*LoggingManifestWriter)(nil)

// LoggingManifestWriter wraps a ManifestWriter with logging.
type LoggingManifestWriter struct {
	next   dashdoc.ManifestWriter
	logger *slog.Logger
}

// NewLoggingManifestWriter creates a new LoggingManifestWriter.
func NewLoggingManifestWriter(next dashdoc.ManifestWriter, logger *slog.Logger) *LoggingManifestWriter {
	return &LoggingManifestWriter{next: next, logger: logger}
}

// WriteManifest delegates to the wrapped writer and logs the operation.
func (w *LoggingManifestWriter) WriteManifest(ctx context.Context, m dashdoc.Manifest) (err error) {
	defer func(begin time.Time) {
		name, _ := m.Get(dashdoc.KeyBundleName)
		w.logger.Info("write manifest",
			"name", name,
			"fields", len(m),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteManifest(ctx, m)
}
