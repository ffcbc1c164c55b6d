package dashdoc

import (
	"path"
	"strings"
)

// KeySource selects what a family's rules are matched against.
type KeySource int

// KeySource constants for Family.
const (
	// KeyFilename splits the page filename, without extension, on hyphens.
	KeyFilename KeySource = iota

	// KeyTrail uses the navigation trail: breadcrumb URLs relative to the
	// site, with the family's fixed breadcrumb prefix removed.
	KeyTrail
)

// Family is the configuration of one documentation family: the rule set
// used to classify its pages plus the fixed docset defaults. A family is
// chosen once per conversion and never mixed across pages.
type Family struct {
	Name string

	// Title is the default docset title.
	Title string

	// SiteURL is the default documentation site URL.
	SiteURL string

	Keys KeySource

	// TrailOffset is the number of leading breadcrumb items shared by every
	// page of the site. They are excluded from the navigation trail.
	TrailOffset int

	Classifier *Classifier

	// Manifest holds the fixed manifest fields, e.g. the bundle identifier.
	Manifest Manifest
}

// Validate returns an error if the family contains invalid fields.
func (f *Family) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "family name required")
	}
	if f.Classifier == nil {
		return Errorf(EINVALID, "family %q has no classifier", f.Name)
	}
	if f.TrailOffset < 0 {
		return Errorf(EINVALID, "family %q has a negative trail offset", f.Name)
	}
	return nil
}

// FilenameTokens returns the hyphen-separated tokens of a filename without
// its extension. Case is preserved.
func FilenameTokens(filename string) []string {
	base := path.Base(filename)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return strings.Split(stem, "-")
}

// Classify assigns an entry type to a page of this family. It returns an
// error only when no override matches and the navigation trail cannot be
// derived from the breadcrumb, e.g. a breadcrumb URL outside the site.
func (f *Family) Classify(site *Site, meta *PageMetadata, filename string) (Category, error) {
	in := ClassifyInput{
		Title:         meta.Title,
		Filename:      path.Base(filename),
		BreadcrumbURL: meta.BreadcrumbURL,
	}
	if typ, ok := f.Classifier.Override(in); ok {
		return typ, nil
	}

	switch f.Keys {
	case KeyTrail:
		var urls []string
		if f.TrailOffset < len(meta.BreadcrumbURL) {
			urls = meta.BreadcrumbURL[f.TrailOffset:]
		}
		trail, err := site.NavigationTrail(urls)
		if err != nil {
			return categoryInvalid, err
		}
		in.Keys = trail
	default:
		in.Keys = FilenameTokens(filename)
	}

	return f.Classifier.Classify(in), nil
}

// DocsetManifest returns the family's fixed manifest fields completed with
// the docset title and the fallback URL of the site.
func (f *Family) DocsetManifest(title string, site *Site) Manifest {
	if title == "" {
		title = f.Title
	}
	return f.Manifest.Set(KeyBundleName, title).Set(KeyFallbackURL, site.URL())
}
