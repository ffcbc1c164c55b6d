package dashdoc

import (
	"net/url"
	"path"
	"strings"
)

// Site is the documentation site a mirror was downloaded from. It converts
// references and breadcrumb URLs into paths relative to the site root.
type Site struct {
	base *url.URL
}

// NewSite parses the site URL. A trailing slash is added when missing so
// relative references resolve inside the site directory.
func NewSite(rawURL string) (*Site, error) {
	if rawURL == "" {
		return nil, Errorf(EINVALID, "site URL required")
	}
	u, err := url.Parse(strings.TrimRight(rawURL, "/") + "/")
	if err != nil {
		return nil, Errorf(EINVALID, "invalid site URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "site URL %q must be absolute", rawURL)
	}
	return &Site{base: u}, nil
}

// URL returns the normalized site URL.
func (s *Site) URL() string {
	return s.base.String()
}

// Host returns the site host.
func (s *Site) Host() string {
	return s.base.Host
}

// DocumentDir returns the site path without its leading slash. This is
// where the site's pages live inside a mirror.
func (s *Site) DocumentDir() string {
	return strings.TrimPrefix(s.base.Path, "/")
}

// Join resolves ref against the site URL.
func (s *Site) Join(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", Errorf(EINVALID, "invalid reference %q: %v", ref, err)
	}
	return s.base.ResolveReference(u).String(), nil
}

// RelativePath returns the path of itemURL relative to the site path.
// The site root itself maps to ".". Returns EINVALID when the URL lies
// outside the site.
func (s *Site) RelativePath(itemURL string) (string, error) {
	u, err := url.Parse(itemURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid breadcrumb URL %q: %v", itemURL, err)
	}

	base := path.Clean(s.base.Path)
	p := path.Clean(u.Path)
	if p == base {
		return ".", nil
	}
	prefix := strings.TrimSuffix(base, "/") + "/"
	if !strings.HasPrefix(p, prefix) {
		return "", Errorf(EINVALID, "%q is not under %q", p, base)
	}
	return strings.TrimPrefix(p, prefix), nil
}

// NavigationTrail converts breadcrumb URLs into site-relative path segments.
func (s *Site) NavigationTrail(urls []string) ([]string, error) {
	trail := make([]string, 0, len(urls))
	for _, u := range urls {
		p, err := s.RelativePath(u)
		if err != nil {
			return nil, err
		}
		trail = append(trail, p)
	}
	return trail, nil
}

// MirrorPath returns the path a local copy of absURL would have under the
// mirror root. It reports false when absURL is not on the site host, since
// the mirror only replicates that host.
func (s *Site) MirrorPath(absURL string) (string, bool) {
	u, err := url.Parse(absURL)
	if err != nil || u.Host != s.base.Host {
		return "", false
	}
	return strings.TrimPrefix(u.Path, "/"), true
}

// IsAbsoluteHTTP reports whether ref is already an absolute http(s) URL.
func IsAbsoluteHTTP(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}
