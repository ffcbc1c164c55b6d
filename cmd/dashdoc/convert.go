package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/convert"
	"github.com/fwojciec/dashdoc/etree"
	"github.com/fwojciec/dashdoc/fs"
	"github.com/fwojciec/dashdoc/goquery"
	"github.com/fwojciec/dashdoc/rules"
	dslog "github.com/fwojciec/dashdoc/slog"
	"github.com/fwojciec/dashdoc/sqlite"
	"github.com/fwojciec/dashdoc/yaml"
	"github.com/google/uuid"
)

// awsDocsURL is the site every known family lives on.
const awsDocsURL = "https://docs.aws.amazon.com/"

// Run executes the cloudformation command.
func (c *CloudFormationCmd) Run(deps *Dependencies) error {
	return c.runBuiltin(deps, "cloudformation")
}

// Run executes the redshift command.
func (c *RedshiftCmd) Run(deps *Dependencies) error {
	return c.runBuiltin(deps, "redshift")
}

// Run executes the custom command.
func (c *CustomCmd) Run(deps *Dependencies) error {
	family, err := yaml.LoadFamilyFile(c.Rules)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}
	return c.runFamily(deps, family)
}

// Run executes the plain command.
func (c *PlainCmd) Run(deps *Dependencies) error {
	conv, err := c.setup(deps, rules.Plain())
	if err != nil {
		return err
	}

	identifier := c.Identifier
	if identifier == "" {
		id, err := uuid.NewUUID()
		if err != nil {
			return fmt.Errorf("generating identifier: %w", err)
		}
		identifier = "aws-" + id.String()
	}
	conv.manifest = conv.manifest.
		Set(dashdoc.KeyBundleIdentifier, identifier).
		Set(dashdoc.KeyPlatformFamily, c.Family)

	if c.MainPage != "" {
		page, err := conv.mirror.SitePath(conv.site, c.MainPage)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
			return err
		}
		conv.manifest = conv.manifest.Set(dashdoc.KeyIndexFilePath, page)
	}

	return conv.run(deps)
}

// conversion holds everything resolved from the flags before any output
// is written.
type conversion struct {
	family      *dashdoc.Family
	site        *dashdoc.Site
	mirror      *fs.Mirror
	docset      *fs.Docset
	manifest    dashdoc.Manifest
	icons       string
	concurrency int
}

func (f *DocsetFlags) runBuiltin(deps *Dependencies, name string) error {
	family, err := rules.Lookup(name)
	if err != nil {
		return err
	}
	return f.runFamily(deps, family)
}

func (f *DocsetFlags) runFamily(deps *Dependencies, family *dashdoc.Family) error {
	conv, err := f.setup(deps, family)
	if err != nil {
		return err
	}
	return conv.run(deps)
}

// setup validates the flags against the family and checks the mirror.
func (f *DocsetFlags) setup(deps *Dependencies, family *dashdoc.Family) (*conversion, error) {
	siteURL := f.SiteURL
	if siteURL == "" {
		siteURL = family.SiteURL
	}
	if siteURL == "" {
		err := dashdoc.Errorf(dashdoc.EINVALID, "--site-url is required for the %s family", family.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return nil, err
	}

	site, err := dashdoc.NewSite(siteURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return nil, err
	}
	if !strings.HasPrefix(site.URL(), awsDocsURL) {
		deps.Logger.Warn("site URL is not an AWS documentation page", "url", site.URL())
	}

	mirror := fs.NewMirror(f.RootDir)
	if err := mirror.Check(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return nil, err
	}

	return &conversion{
		family:      family,
		site:        site,
		mirror:      mirror,
		docset:      fs.NewDocset(f.DocsetPath),
		manifest:    family.DocsetManifest(f.Title, site),
		icons:       f.Icons,
		concurrency: f.Concurrency,
	}, nil
}

// run creates the docset and converts every page of the site into it.
func (c *conversion) run(deps *Dependencies) error {
	logger := deps.Logger

	if err := c.docset.Prepare(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}
	logger.Info("convert docs", "root", c.mirror.Root(), "docset", c.docset.Path(), "family", c.family.Name)

	if c.icons != "" {
		if err := c.docset.CopyIcons(c.icons); err != nil {
			return fmt.Errorf("copying icons: %w", err)
		}
	}

	files, err := c.mirror.DocumentFiles(c.site)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("no documents found", "dir", c.mirror.SiteDir(c.site))
	}

	db := sqlite.NewDB(c.docset.IndexPath())
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open index at %q: %w", c.docset.IndexPath(), err)
	}
	defer db.Close()

	assets := dslog.NewLoggingAssetStore(fs.NewAssetStore(c.docset.ImagesDir()), logger)
	rewriter := goquery.NewRewriter(fs.NewResolver(c.site, c.mirror), assets)
	rewriter.Stylesheets = fs.Stylesheets
	rewriter.ImageDir = fs.ImageDir

	converter := &convert.Converter{
		Family:      c.family,
		Site:        c.site,
		Parser:      goquery.NewParser(),
		Extractor:   dslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Rewriter:    dslog.NewLoggingRewriter(rewriter, logger),
		Documents:   c.docset,
		Index:       dslog.NewLoggingIndexService(sqlite.NewIndexService(db), logger),
		Manifest:    dslog.NewLoggingManifestWriter(etree.NewPlistWriter(c.docset.InfoPlistPath()), logger),
		Concurrency: c.concurrency,
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d pages\n", event.Total)
		case convert.ProgressSkipped:
			logger.Warn("page not indexed", "file", filepath.Base(event.File), "err", dashdoc.ErrorMessage(event.Error))
		case convert.ProgressIndexed:
			logger.Debug("indexed", "file", filepath.Base(event.File), "type", event.Category,
				"progress", fmt.Sprintf("%d/%d", event.Completed, event.Total))
		case convert.ProgressFinished:
			// Summary printed after conversion completes
		}
	}

	result, err := converter.Convert(deps.Ctx, files, c.manifest, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error converting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d pages (%d indexed, %d without metadata, %d images copied)\n",
		result.Converted, result.Indexed, result.Skipped, result.Copied)
	fmt.Fprintf(deps.Stdout, "Docset created at %s\n", c.docset.Path())

	return nil
}
