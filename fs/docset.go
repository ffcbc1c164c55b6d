package fs

import (
	"context"
	"embed"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/dashdoc"
)

//go:embed statics/css/*.css
var statics embed.FS

// Stylesheets are the bundled stylesheets, relative to a docset page.
var Stylesheets = []string{"Css/normalize.css", "Css/aws-doc-page.css"}

// ImageDir is the image folder, relative to a docset page.
const ImageDir = "Images"

var _ dashdoc.DocumentWriter = (*Docset)(nil)

// Docset is the on-disk layout of a Dash docset.
type Docset struct {
	path string
}

// NewDocset creates a Docset at path. The ".docset" suffix is added when
// missing.
func NewDocset(path string) *Docset {
	path = filepath.Clean(path)
	if filepath.Ext(path) != ".docset" {
		path += ".docset"
	}
	return &Docset{path: path}
}

// Path returns the docset directory.
func (d *Docset) Path() string { return d.path }

// ResourcesDir returns Contents/Resources.
func (d *Docset) ResourcesDir() string {
	return filepath.Join(d.path, "Contents", "Resources")
}

// DocumentsDir returns Contents/Resources/Documents.
func (d *Docset) DocumentsDir() string {
	return filepath.Join(d.ResourcesDir(), "Documents")
}

// ImagesDir returns the folder images are copied into.
func (d *Docset) ImagesDir() string {
	return filepath.Join(d.DocumentsDir(), ImageDir)
}

// IndexPath returns the search index database path.
func (d *Docset) IndexPath() string {
	return filepath.Join(d.ResourcesDir(), "docSet.dsidx")
}

// InfoPlistPath returns the manifest path.
func (d *Docset) InfoPlistPath() string {
	return filepath.Join(d.path, "Contents", "Info.plist")
}

// Prepare creates the docset folder structure and copies the bundled
// stylesheets. Returns ECONFLICT if the docset directory exists and is not
// empty.
func (d *Docset) Prepare() error {
	entries, err := os.ReadDir(d.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(entries) > 0 {
		return dashdoc.Errorf(dashdoc.ECONFLICT, "output directory %q is not empty", d.path)
	}

	if err := os.MkdirAll(d.ImagesDir(), 0755); err != nil {
		return err
	}

	for _, sheet := range Stylesheets {
		data, err := statics.ReadFile("statics/css/" + filepath.Base(sheet))
		if err != nil {
			return err
		}
		dst := filepath.Join(d.DocumentsDir(), filepath.FromSlash(sheet))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

// WriteDocument renders doc into the Documents folder under name.
func (d *Docset) WriteDocument(ctx context.Context, name string, doc dashdoc.Document) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return dashdoc.Errorf(dashdoc.EINVALID, "invalid document name %q", name)
	}

	f, err := os.Create(filepath.Join(d.DocumentsDir(), name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return doc.Render(f)
}

// CopyIcons copies icon.png and icon@2x.png from dir into the docset.
// Missing icons are skipped; an icon-less docset is still valid.
func (d *Docset) CopyIcons(dir string) error {
	for _, name := range []string{"icon.png", "icon@2x.png"} {
		if err := copyFile(filepath.Join(dir, name), filepath.Join(d.path, name)); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
