package goquery

import (
	"context"
	"html"
	"path"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Rewriter = (*Rewriter)(nil)

// Rewriter prepares pages for a docset.
//
// Hyperlinks with a local copy keep their relative form; pages sit next to
// each other in the docset just as in the site directory. Hyperlinks
// without one point at the live site. Images with a local copy are copied
// into ImageDir; others point at the live site.
type Rewriter struct {
	resolver dashdoc.ReferenceResolver
	assets   dashdoc.AssetStore

	// Stylesheets are linked from every page, relative to the page.
	Stylesheets []string

	// ImageDir is the image folder, relative to the page.
	ImageDir string
}

// NewRewriter creates a new Rewriter.
func NewRewriter(resolver dashdoc.ReferenceResolver, assets dashdoc.AssetStore) *Rewriter {
	return &Rewriter{
		resolver: resolver,
		assets:   assets,
		ImageDir: "Images",
	}
}

// Rewrite modifies doc in place. References that cannot be resolved are
// left as they are and counted as skipped.
func (r *Rewriter) Rewrite(ctx context.Context, d dashdoc.Document) (*dashdoc.RewriteStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := selection(d)
	if err != nil {
		return nil, err
	}

	// Scripts need network access and the site stylesheets are replaced
	// by the bundled ones.
	doc.Find("script").Remove()
	doc.Find("link").Remove()

	head := doc.Find("head").First()
	for _, href := range r.Stylesheets {
		head.AppendHtml(`<link href="` + html.EscapeString(href) + `" rel="stylesheet"/>`)
	}

	stats := &dashdoc.RewriteStats{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		r.rewriteLink(sel, stats)
	})

	var storeErr error
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if err := ctx.Err(); err != nil {
			storeErr = err
			return false
		}
		r.rewriteImage(ctx, sel, stats)
		return true
	})
	if storeErr != nil {
		return nil, storeErr
	}

	return stats, nil
}

func (r *Rewriter) rewriteLink(sel *goquery.Selection, stats *dashdoc.RewriteStats) {
	href, _ := sel.Attr("href")
	if dashdoc.IsAbsoluteHTTP(href) {
		return
	}

	ref, err := r.resolver.Resolve(href)
	if err != nil {
		stats.Skipped++
		return
	}

	switch ref := ref.(type) {
	case dashdoc.RemoteReference:
		sel.SetAttr("href", ref.URL)
		stats.Links++
	case dashdoc.LocalReference:
		// Relative links between pages still work inside the docset.
	}
}

func (r *Rewriter) rewriteImage(ctx context.Context, sel *goquery.Selection, stats *dashdoc.RewriteStats) {
	src, _ := sel.Attr("src")

	ref, err := r.resolver.Resolve(src)
	if err != nil {
		stats.Skipped++
		return
	}

	switch ref := ref.(type) {
	case dashdoc.RemoteReference:
		sel.SetAttr("src", ref.URL)
		stats.Images++
	case dashdoc.LocalReference:
		name, err := r.assets.StoreImage(ctx, ref.Path)
		if err != nil {
			stats.Skipped++
			return
		}
		sel.SetAttr("src", path.Join(r.ImageDir, name))
		stats.Copied++
	}
}
