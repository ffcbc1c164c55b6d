package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/dashdoc"
)

// SitemapURLs returns the <loc> values of a sitemap. For a <urlset> these
// are page URLs; for a <sitemapindex> they are the nested sitemap URLs.
func SitemapURLs(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "empty sitemap XML")
	}

	child := "url"
	if root.Tag == "sitemapindex" {
		child = "sitemap"
	}

	urls := []string{}
	for _, el := range root.SelectElements(child) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
