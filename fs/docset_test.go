package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/fs"
	"github.com/fwojciec/dashdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "Redshift.docset"), fs.NewDocset(filepath.Join(dir, "Redshift")).Path())
	assert.Equal(t, filepath.Join(dir, "Redshift.docset"), fs.NewDocset(filepath.Join(dir, "Redshift.docset")).Path())

	d := fs.NewDocset(filepath.Join(dir, "Redshift"))
	assert.Equal(t, filepath.Join(d.Path(), "Contents", "Resources", "docSet.dsidx"), d.IndexPath())
	assert.Equal(t, filepath.Join(d.Path(), "Contents", "Info.plist"), d.InfoPlistPath())
	assert.Equal(t, filepath.Join(d.Path(), "Contents", "Resources", "Documents", "Images"), d.ImagesDir())
}

func TestDocset_Prepare(t *testing.T) {
	t.Parallel()

	t.Run("creates the layout and stylesheets", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDocset(filepath.Join(t.TempDir(), "Guide"))

		require.NoError(t, d.Prepare())

		info, err := os.Stat(d.ImagesDir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		for _, sheet := range fs.Stylesheets {
			data, err := os.ReadFile(filepath.Join(d.DocumentsDir(), filepath.FromSlash(sheet)))
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		}
	})

	t.Run("accepts an existing empty directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Guide.docset")
		require.NoError(t, os.MkdirAll(path, 0o755))

		assert.NoError(t, fs.NewDocset(path).Prepare())
	})

	t.Run("returns ECONFLICT for a non-empty directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Guide.docset")
		require.NoError(t, os.MkdirAll(filepath.Join(path, "Contents"), 0o755))

		err := fs.NewDocset(path).Prepare()

		assert.Equal(t, dashdoc.ECONFLICT, dashdoc.ErrorCode(err))
	})
}

func TestDocset_WriteDocument(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{
		RenderFn: func(w io.Writer) error {
			_, err := io.WriteString(w, "<html>rendered</html>")
			return err
		},
	}

	t.Run("writes into the documents folder", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDocset(filepath.Join(t.TempDir(), "Guide"))
		require.NoError(t, d.Prepare())

		require.NoError(t, d.WriteDocument(context.Background(), "welcome.html", doc))

		data, err := os.ReadFile(filepath.Join(d.DocumentsDir(), "welcome.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html>rendered</html>", string(data))
	})

	t.Run("rejects names with separators", func(t *testing.T) {
		t.Parallel()

		d := fs.NewDocset(filepath.Join(t.TempDir(), "Guide"))
		require.NoError(t, d.Prepare())

		err := d.WriteDocument(context.Background(), "../escape.html", doc)

		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})
}

func TestDocset_CopyIcons(t *testing.T) {
	t.Parallel()

	t.Run("copies present icons and skips missing ones", func(t *testing.T) {
		t.Parallel()

		icons := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(icons, "icon.png"), []byte("icon"), 0o644))
		d := fs.NewDocset(filepath.Join(t.TempDir(), "Guide"))
		require.NoError(t, d.Prepare())

		require.NoError(t, d.CopyIcons(icons))

		data, err := os.ReadFile(filepath.Join(d.Path(), "icon.png"))
		require.NoError(t, err)
		assert.Equal(t, "icon", string(data))
		_, err = os.Stat(filepath.Join(d.Path(), "icon@2x.png"))
		assert.True(t, os.IsNotExist(err))
	})
}
