package fs

import "github.com/fwojciec/dashdoc"

var _ dashdoc.ReferenceResolver = (*Resolver)(nil)

// Resolver resolves references against a site and its local mirror.
type Resolver struct {
	site   *dashdoc.Site
	mirror *Mirror
}

// NewResolver creates a new Resolver.
func NewResolver(site *dashdoc.Site, mirror *Mirror) *Resolver {
	return &Resolver{site: site, mirror: mirror}
}

// Resolve returns a LocalReference when the reference, joined against the
// site URL, exists in the mirror. Otherwise it returns a RemoteReference
// to the joined URL. Absolute http(s) references are always remote; joining
// only puts them in canonical form, e.g. by removing dot segments.
func (r *Resolver) Resolve(ref string) (dashdoc.Reference, error) {
	fallback, err := r.site.Join(ref)
	if err != nil {
		return nil, err
	}
	if dashdoc.IsAbsoluteHTTP(ref) {
		return dashdoc.RemoteReference{URL: fallback}, nil
	}

	if rel, ok := r.site.MirrorPath(fallback); ok {
		if p, ok := r.mirror.Lookup(rel); ok {
			return dashdoc.LocalReference{Path: p}, nil
		}
	}

	return dashdoc.RemoteReference{URL: fallback}, nil
}
