package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingAssetStore implements dashdoc.AssetStore.
var _ dashdoc.AssetStore = (*LoggingAssetStore)(nil)

// LoggingAssetStore wraps an AssetStore with debug logging.
type LoggingAssetStore struct {
	next   dashdoc.AssetStore
	logger *slog.Logger
}

// NewLoggingAssetStore creates a new LoggingAssetStore.
func NewLoggingAssetStore(next dashdoc.AssetStore, logger *slog.Logger) *LoggingAssetStore {
	return &LoggingAssetStore{next: next, logger: logger}
}

// StoreImage delegates to the wrapped store and logs the copy.
func (s *LoggingAssetStore) StoreImage(ctx context.Context, src string) (name string, err error) {
	defer func() {
		if err != nil {
			s.logger.Warn("copy image", "src", src, "err", err)
			return
		}
		s.logger.Debug("copy image", "src", src, "name", name)
	}()
	return s.next.StoreImage(ctx, src)
}
