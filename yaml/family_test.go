package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/rules"
	"github.com/fwojciec/dashdoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redshiftYAML = `
name: redshift
title: Amazon Redshift Database Developer Guide
siteUrl: https://docs.aws.amazon.com/redshift/latest/dg/
keys: trail
trailOffset: 3
manifest:
  - {key: CFBundleIdentifier, value: aws-redshift-dg}
  - {key: DocSetPlatformFamily, value: Amazon Redshift}
  - {key: dashIndexFilePath, value: welcome.html}
rules:
  - key: [cm_chap_SQLCommandRef.html, c_SQL_reference.html, c_Basic_elements.html, c_Supported_data_types.html]
    type: Type
  - {key: [cm_chap_SQLCommandRef.html, c_SQL_reference.html, r_expressions.html], type: Statement}
  - {key: [cm_chap_SQLCommandRef.html, c_SQL_reference.html, r_conditions.html], type: Statement}
  - {key: [cm_chap_SQLCommandRef.html, c_SQL_commands.html], type: Command}
  - {key: [cm_chap_SQLCommandRef.html, c_SQL_functions.html], type: Function}
  - {key: [cm_chap_SQLCommandRef.html, r_pg_keywords.html], type: Keyword}
  - {key: [cm_chap_system-tables.html], type: Builtin}
  - {key: [cm_chap_ConfigurationRef.html], type: Setting}
  - {key: [c_sampledb.html], type: Builtin}
`

func TestLoadFamily(t *testing.T) {
	t.Parallel()

	t.Run("classifies like the built-in family", func(t *testing.T) {
		t.Parallel()

		loaded, err := yaml.LoadFamily(strings.NewReader(redshiftYAML))
		require.NoError(t, err)
		builtin := rules.Redshift()

		assert.Equal(t, builtin.Name, loaded.Name)
		assert.Equal(t, builtin.SiteURL, loaded.SiteURL)
		assert.Equal(t, builtin.Keys, loaded.Keys)
		assert.Equal(t, builtin.TrailOffset, loaded.TrailOffset)
		assert.Equal(t, builtin.Manifest, loaded.Manifest)

		site, err := dashdoc.NewSite(builtin.SiteURL)
		require.NoError(t, err)

		prefix := []string{"https://docs.aws.amazon.com/", "https://docs.aws.amazon.com/redshift/", builtin.SiteURL + "welcome.html"}
		trails := [][]string{
			{"cm_chap_system-tables.html", "r_STL_QUERY.html"},
			{"cm_chap_SQLCommandRef.html", "c_SQL_commands.html", "r_ALTER_TABLE.html"},
			{"cm_chap_SQLCommandRef.html", "c_SQL_reference.html", "c_Basic_elements.html", "c_Supported_data_types.html", "r_Numeric_types201.html"},
			{"cm_chap_SQLCommandRef.html", "c_SQL_reference.html", "r_conditions.html"},
			{"c_intro.html"},
			{},
		}
		for _, trail := range trails {
			urls := append([]string(nil), prefix...)
			for _, seg := range trail {
				urls = append(urls, builtin.SiteURL+seg)
			}
			meta := &dashdoc.PageMetadata{Title: "Page", BreadcrumbText: make([]string, len(urls)), BreadcrumbURL: urls}

			want, err := builtin.Classify(site, meta, "page.html")
			require.NoError(t, err)
			got, err := loaded.Classify(site, meta, "page.html")
			require.NoError(t, err)
			assert.Equal(t, want, got, "trail %v", trail)
		}
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Parallel()

		f, err := yaml.LoadFamily(strings.NewReader(`
name: cfn
default: Section
overrides:
  - title: AWS::Include transform
    type: Macro
  - breadcrumbLength: 3
    breadcrumbSuffixes: {2: /template-anatomy.html}
    type: keyword
  - filenamePrefixes: [AWS_, Alexa_]
    type: Namespace
rules:
  - {key: [crpg, ref, requesttypes], minKeys: 4, type: Method}
`))
		require.NoError(t, err)
		assert.Equal(t, dashdoc.KeyFilename, f.Keys)
		assert.Equal(t, dashdoc.EntrySection, f.Classifier.Fallback())

		c := f.Classifier
		assert.Equal(t, dashdoc.EntryMacro, c.Classify(dashdoc.ClassifyInput{Title: "AWS::Include transform"}))
		assert.Equal(t, dashdoc.EntryKeyword, c.Classify(dashdoc.ClassifyInput{
			BreadcrumbURL: []string{"a", "b", "https://x/template-anatomy.html"},
		}))
		assert.Equal(t, dashdoc.EntryNamespace, c.Classify(dashdoc.ClassifyInput{Filename: "AWS_S3_Bucket.html"}))
		assert.Equal(t, dashdoc.EntrySection, c.Classify(dashdoc.ClassifyInput{Keys: []string{"crpg", "ref", "requesttypes"}}))
		assert.Equal(t, dashdoc.EntryMethod, c.Classify(dashdoc.ClassifyInput{Keys: []string{"crpg", "ref", "requesttypes", "create"}}))
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadFamily(strings.NewReader("name: x\nrules:\n  - {key: [a], type: Widget}\n"))
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadFamily(strings.NewReader("name: x\nfallback: Guide\n"))
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("rejects unknown key sources", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadFamily(strings.NewReader("name: x\nkeys: title\n"))
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("rejects empty files", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadFamily(strings.NewReader(""))
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadFamily(strings.NewReader("title: Nameless\n"))
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})
}

func TestLoadFamilyFile(t *testing.T) {
	t.Parallel()

	t.Run("reads a file from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "redshift.yaml")
		require.NoError(t, os.WriteFile(path, []byte(redshiftYAML), 0o644))

		f, err := yaml.LoadFamilyFile(path)
		require.NoError(t, err)
		assert.Equal(t, "redshift", f.Name)
	})

	t.Run("returns an error for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadFamilyFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
