package etree_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/dashdoc"
	detree "github.com/fwojciec/dashdoc/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redshiftManifest = dashdoc.Manifest{
	{Key: dashdoc.KeyBundleIdentifier, Value: "aws-redshift-dg"},
	{Key: dashdoc.KeyPlatformFamily, Value: "Amazon Redshift"},
	{Key: dashdoc.KeyIndexFilePath, Value: "welcome.html"},
	{Key: dashdoc.KeyBundleName, Value: "Amazon Redshift & Spectrum"},
	{Key: dashdoc.KeyFallbackURL, Value: "https://docs.aws.amazon.com/redshift/latest/dg/"},
}

func TestEncodePlist(t *testing.T) {
	t.Parallel()

	t.Run("writes header and doctype", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, detree.EncodePlist(&buf, redshiftManifest))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, out, `<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`)
		assert.Contains(t, out, `<plist version="1.0">`)
	})

	t.Run("writes fields in order followed by isDashDocset", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, detree.EncodePlist(&buf, redshiftManifest))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
		dict := doc.FindElement("/plist/dict")
		require.NotNil(t, dict)

		children := dict.ChildElements()
		require.Len(t, children, 2*len(redshiftManifest)+2)
		for i, field := range redshiftManifest {
			assert.Equal(t, "key", children[2*i].Tag)
			assert.Equal(t, field.Key, children[2*i].Text())
			assert.Equal(t, "string", children[2*i+1].Tag)
			assert.Equal(t, field.Value, children[2*i+1].Text())
		}
		last := children[len(children)-2:]
		assert.Equal(t, "isDashDocset", last[0].Text())
		assert.Equal(t, "true", last[1].Tag)
	})

	t.Run("escapes values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, detree.EncodePlist(&buf, redshiftManifest))

		assert.Contains(t, buf.String(), "<string>Amazon Redshift &amp; Spectrum</string>")
	})
}

func TestPlistWriter_WriteManifest(t *testing.T) {
	t.Parallel()

	t.Run("writes the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Info.plist")

		require.NoError(t, detree.NewPlistWriter(path).WriteManifest(context.Background(), redshiftManifest))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<string>aws-redshift-dg</string>")
	})

	t.Run("returns an error for a missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "Info.plist")

		err := detree.NewPlistWriter(path).WriteManifest(context.Background(), redshiftManifest)
		assert.Error(t, err)
	})
}
