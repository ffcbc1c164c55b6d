// Package rules provides the built-in documentation families. Each family
// bundles the classification rules for one documentation site with the
// docset defaults for it.
package rules

import (
	"sort"

	"github.com/fwojciec/dashdoc"
)

var families = map[string]func() *dashdoc.Family{
	"cloudformation": CloudFormation,
	"redshift":       Redshift,
	"plain":          Plain,
}

// Lookup returns the built-in family with the given name.
// Returns ENOTFOUND if no such family exists.
func Lookup(name string) (*dashdoc.Family, error) {
	fn, ok := families[name]
	if !ok {
		return nil, dashdoc.Errorf(dashdoc.ENOTFOUND, "unknown family %q", name)
	}
	return fn(), nil
}

// Names returns the names of the built-in families, sorted.
func Names() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mustClassifier builds a classifier from static tables. The tables are
// fixed at compile time, so an error is a programming mistake.
func mustClassifier(fallback dashdoc.Category, overrides []dashdoc.Override, rules []dashdoc.Rule) *dashdoc.Classifier {
	c, err := dashdoc.NewClassifier(fallback, overrides, rules)
	if err != nil {
		panic(err)
	}
	return c
}

// key is shorthand for rule keys.
func key(parts ...string) []string {
	return parts
}
