// Package etree implements the XML formats of a docset build on top of
// github.com/beevik/etree: the Info.plist manifest and sitemap reading.
package etree

import (
	"context"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.ManifestWriter = (*PlistWriter)(nil)

const plistDocType = `<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`

// PlistWriter writes a docset manifest as an Info.plist file.
type PlistWriter struct {
	path string
}

// NewPlistWriter creates a PlistWriter writing to path.
func NewPlistWriter(path string) *PlistWriter {
	return &PlistWriter{path: path}
}

// WriteManifest writes m to the plist file. Every field is stored as a
// string; isDashDocset is always set to true.
func (w *PlistWriter) WriteManifest(ctx context.Context, m dashdoc.Manifest) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodePlist(f, m)
}

// EncodePlist writes m as a property list document.
func EncodePlist(out io.Writer, m dashdoc.Manifest) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(plistDocType[2 : len(plistDocType)-1])

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	for _, field := range m {
		dict.CreateElement("key").SetText(field.Key)
		dict.CreateElement("string").SetText(field.Value)
	}
	dict.CreateElement("key").SetText("isDashDocset")
	dict.CreateElement("true")

	doc.Indent(2)
	_, err := doc.WriteTo(out)
	return err
}
