package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.AssetStore = (*AssetStore)(nil)

// AssetStore copies images into a single flat folder.
//
// Images from different source directories share the folder's namespace.
// A file is stored under its own name unless that name already holds
// different bytes; then a content fingerprint is added to the name. The
// outcome for a given folder state is always the same, so repeating a
// conversion is byte-identical. Writes are serialized.
type AssetStore struct {
	mu  sync.Mutex
	dir string
}

// NewAssetStore creates an AssetStore writing into dir.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{dir: dir}
}

// StoreImage copies src into the folder and returns the stored file name.
func (s *AssetStore) StoreImage(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := filepath.Base(src)
	for _, candidate := range []string{name, fingerprintName(name, data)} {
		existing, err := os.ReadFile(filepath.Join(s.dir, candidate))
		if os.IsNotExist(err) {
			if err := os.WriteFile(filepath.Join(s.dir, candidate), data, 0644); err != nil {
				return "", err
			}
			return candidate, nil
		} else if err != nil {
			return "", err
		}
		if bytes.Equal(existing, data) {
			return candidate, nil
		}
	}

	return "", dashdoc.Errorf(dashdoc.ECONFLICT, "image %q collides with an existing file", name)
}

// fingerprintName inserts the xxHash of data before the extension:
// diagram.png → diagram-0123456789abcdef.png.
func fingerprintName(name string, data []byte) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%016x%s", stem, xxhash.Sum64(data), ext)
}
