package goquery_test

import (
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const breadcrumbScript = `<script type="application/ld+json">
{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[
 {"@type":"ListItem","position":1,"name":"Documentation","item":"https://docs.aws.amazon.com/index.html"},
 {"@type":"ListItem","position":2,"name":"Amazon Redshift","item":"https://docs.aws.amazon.com/redshift/index.html"},
 {"@type":"ListItem","position":3,"name":"Database Developer Guide","item":"https://docs.aws.amazon.com/redshift/latest/dg/welcome.html"}
]}
</script>`

func TestExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads title and breadcrumb", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>`+breadcrumbScript+`</head><body>
<h1 class="topictitle">ALTER
   TABLE</h1><h1>Second</h1></body></html>`)

		meta, err := goquery.NewExtractor().ExtractMetadata(doc)

		require.NoError(t, err)
		assert.Equal(t, "ALTER TABLE", meta.Title)
		assert.Equal(t, []string{"Documentation", "Amazon Redshift", "Database Developer Guide"}, meta.BreadcrumbText)
		assert.Equal(t, []string{
			"https://docs.aws.amazon.com/index.html",
			"https://docs.aws.amazon.com/redshift/index.html",
			"https://docs.aws.amazon.com/redshift/latest/dg/welcome.html",
		}, meta.BreadcrumbURL)
	})

	t.Run("accepts item objects with an id", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><script type="application/ld+json">
{"itemListElement":[{"name":"Guide","item":{"@id":"https://docs.aws.amazon.com/guide/","name":"Guide"}}]}
</script></head><body><h1>Guide</h1></body></html>`)

		meta, err := goquery.NewExtractor().ExtractMetadata(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.aws.amazon.com/guide/"}, meta.BreadcrumbURL)
	})

	t.Run("skips JSON-LD blocks without an item list", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@type":"WebPage","name":"x"}</script>
`+breadcrumbScript+`</head><body><h1>Welcome</h1></body></html>`)

		meta, err := goquery.NewExtractor().ExtractMetadata(doc)

		require.NoError(t, err)
		assert.Len(t, meta.BreadcrumbURL, 3)
	})

	t.Run("returns ENOTFOUND without a heading", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>`+breadcrumbScript+`</head><body><h2>Not a title</h2></body></html>`)

		_, err := goquery.NewExtractor().ExtractMetadata(doc)

		assert.Equal(t, dashdoc.ENOTFOUND, dashdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND without a breadcrumb", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><h1>Welcome</h1><script>var x = 1;</script></body></html>`)

		_, err := goquery.NewExtractor().ExtractMetadata(doc)

		assert.Equal(t, dashdoc.ENOTFOUND, dashdoc.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed JSON", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><script type="application/ld+json">{"itemListElement":[</script></head>
<body><h1>Welcome</h1></body></html>`)

		_, err := goquery.NewExtractor().ExtractMetadata(doc)

		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("returns EINVALID for an empty item list", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><script type="application/ld+json">{"itemListElement":[]}</script></head>
<body><h1>Welcome</h1></body></html>`)

		_, err := goquery.NewExtractor().ExtractMetadata(doc)

		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("returns EINVALID for an item without a URL", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><script type="application/ld+json">{"itemListElement":[{"name":"Guide"}]}</script></head>
<body><h1>Welcome</h1></body></html>`)

		_, err := goquery.NewExtractor().ExtractMetadata(doc)

		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})
}
