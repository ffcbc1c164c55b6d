package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redshiftURL = "https://docs.aws.amazon.com/redshift/latest/dg/"

// setupMirror creates a mirror with the given files, relative to the root.
func setupMirror(t *testing.T, files ...string) (*fs.Mirror, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "docs.aws.amazon.com")
	require.NoError(t, os.MkdirAll(root, 0o755))
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o644))
	}
	return fs.NewMirror(root), root
}

func redshiftSite(t *testing.T) *dashdoc.Site {
	t.Helper()
	site, err := dashdoc.NewSite(redshiftURL)
	require.NoError(t, err)
	return site
}

func TestMirror_Check(t *testing.T) {
	t.Parallel()

	t.Run("accepts an existing directory", func(t *testing.T) {
		t.Parallel()

		m, _ := setupMirror(t)
		assert.NoError(t, m.Check())
	})

	t.Run("returns ENOTFOUND for a missing directory", func(t *testing.T) {
		t.Parallel()

		m := fs.NewMirror(filepath.Join(t.TempDir(), "missing"))
		assert.Equal(t, dashdoc.ENOTFOUND, dashdoc.ErrorCode(m.Check()))
	})

	t.Run("returns ENOTFOUND for a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		assert.Equal(t, dashdoc.ENOTFOUND, dashdoc.ErrorCode(fs.NewMirror(path).Check()))
	})
}

func TestMirror_DocumentFiles(t *testing.T) {
	t.Parallel()

	m, root := setupMirror(t,
		"redshift/latest/dg/welcome.html",
		"redshift/latest/dg/c_SQL_commands.html",
		"redshift/latest/dg/images/arch.png",
		"redshift/latest/dg/nested/page.html",
		"redshift/latest/mgmt/welcome.html",
	)

	files, err := m.DocumentFiles(redshiftSite(t))

	require.NoError(t, err)
	dir := filepath.Join(root, "redshift", "latest", "dg")
	assert.Equal(t, []string{
		filepath.Join(dir, "c_SQL_commands.html"),
		filepath.Join(dir, "welcome.html"),
	}, files)
}

func TestMirror_Lookup(t *testing.T) {
	t.Parallel()

	m, root := setupMirror(t, "redshift/latest/dg/images/arch.png")

	t.Run("finds files", func(t *testing.T) {
		t.Parallel()

		p, ok := m.Lookup("redshift/latest/dg/images/arch.png")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "redshift", "latest", "dg", "images", "arch.png"), p)
	})

	t.Run("finds directories", func(t *testing.T) {
		t.Parallel()

		_, ok := m.Lookup("redshift/latest/dg/")
		assert.True(t, ok)
	})

	t.Run("misses absent files", func(t *testing.T) {
		t.Parallel()

		_, ok := m.Lookup("redshift/latest/dg/images/missing.png")
		assert.False(t, ok)
	})

	t.Run("never escapes the root", func(t *testing.T) {
		t.Parallel()

		outside := filepath.Join(filepath.Dir(root), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

		_, ok := m.Lookup("../secret.txt")
		assert.False(t, ok)
	})
}

func TestMirror_SitePath(t *testing.T) {
	t.Parallel()

	m, root := setupMirror(t)
	site := redshiftSite(t)

	t.Run("returns the path inside the site directory", func(t *testing.T) {
		t.Parallel()

		p, err := m.SitePath(site, filepath.Join(root, "redshift", "latest", "dg", "welcome.html"))
		require.NoError(t, err)
		assert.Equal(t, "welcome.html", p)
	})

	t.Run("rejects files outside the site directory", func(t *testing.T) {
		t.Parallel()

		_, err := m.SitePath(site, filepath.Join(root, "redshift", "latest", "mgmt", "welcome.html"))
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})
}
