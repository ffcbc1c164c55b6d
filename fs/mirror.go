// Package fs provides file-based implementations: the local site mirror,
// reference resolution against it, and the docset layout on disk.
package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/dashdoc"
)

// Mirror is a directory tree replicating a site's URL path structure,
// e.g. ./docs.aws.amazon.com/redshift/latest/dg/welcome.html.
type Mirror struct {
	root string
}

// NewMirror creates a Mirror rooted at root.
func NewMirror(root string) *Mirror {
	return &Mirror{root: root}
}

// Root returns the mirror root directory.
func (m *Mirror) Root() string {
	return m.root
}

// Check returns ENOTFOUND if the mirror root does not exist or is not a
// directory.
func (m *Mirror) Check() error {
	info, err := os.Stat(m.root)
	if os.IsNotExist(err) {
		return dashdoc.Errorf(dashdoc.ENOTFOUND, "root directory %q does not exist", m.root)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return dashdoc.Errorf(dashdoc.ENOTFOUND, "root directory %q is not a directory", m.root)
	}
	return nil
}

// SiteDir returns the directory holding the site's pages.
func (m *Mirror) SiteDir(site *dashdoc.Site) string {
	return filepath.Join(m.root, filepath.FromSlash(site.DocumentDir()))
}

// DocumentFiles returns the HTML pages directly inside the site directory,
// sorted by name.
func (m *Mirror) DocumentFiles(site *dashdoc.Site) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(m.SiteDir(site), "*.html"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Lookup returns the file path of rel under the mirror root and whether
// anything exists there. Paths escaping the root never exist.
func (m *Mirror) Lookup(rel string) (string, bool) {
	p := filepath.Join(m.root, filepath.FromSlash(rel))
	if r, err := filepath.Rel(m.root, p); err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// SitePath returns the path of file relative to the site directory, using
// forward slashes. Returns EINVALID if file lies outside it.
func (m *Mirror) SitePath(site *dashdoc.Site, file string) (string, error) {
	rel, err := filepath.Rel(m.SiteDir(site), file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", dashdoc.Errorf(dashdoc.EINVALID, "%q is not inside the site directory", file)
	}
	return filepath.ToSlash(rel), nil
}
