package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/etree"
)

// Run executes the sitemap-urls command.
func (c *SitemapURLsCmd) Run(deps *Dependencies) error {
	var r io.Reader = deps.Stdin
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		r = f
	}

	urls, err := etree.SitemapURLs(r)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
