package dashdoc

import "strings"

// ClassifyInput is what a Classifier decides on. Overrides look at the
// title and raw breadcrumb URLs; rules look at Keys, which are either
// filename tokens or navigation trail segments depending on the family.
type ClassifyInput struct {
	Title         string
	Filename      string
	BreadcrumbURL []string
	Keys          []string
}

// Override is a literal classification rule that bypasses the rule table.
// Every criterion that is set must hold for the override to match. An
// override with no criteria never matches.
type Override struct {
	Title string

	// BreadcrumbLength, when non-zero, requires an exact breadcrumb length.
	BreadcrumbLength int

	// BreadcrumbSuffixes maps a breadcrumb index to a suffix its URL must end with.
	BreadcrumbSuffixes map[int]string

	// FilenamePrefixes matches when the filename starts with any of them.
	FilenamePrefixes []string

	Type Category
}

func (o Override) empty() bool {
	return o.Title == "" && o.BreadcrumbLength == 0 &&
		len(o.BreadcrumbSuffixes) == 0 && len(o.FilenamePrefixes) == 0
}

// Match reports whether the override applies to in.
func (o Override) Match(in ClassifyInput) bool {
	if o.empty() {
		return false
	}
	if o.Title != "" && o.Title != in.Title {
		return false
	}
	if o.BreadcrumbLength != 0 && o.BreadcrumbLength != len(in.BreadcrumbURL) {
		return false
	}
	for i, suffix := range o.BreadcrumbSuffixes {
		if i < 0 || i >= len(in.BreadcrumbURL) || !strings.HasSuffix(in.BreadcrumbURL[i], suffix) {
			return false
		}
	}
	if len(o.FilenamePrefixes) > 0 && !hasAnyPrefix(in.Filename, o.FilenamePrefixes) {
		return false
	}
	return true
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Rule maps an exact key prefix to an entry type.
type Rule struct {
	Key []string

	// MinKeys, when set, requires the input to have at least this many keys
	// before the rule is accepted, e.g. a three-key rule that only applies
	// when a fourth key exists.
	MinKeys int

	Type Category
}

func (r Rule) match(keys []string) bool {
	if len(keys) < len(r.Key) || len(keys) < r.MinKeys {
		return false
	}
	for i, k := range r.Key {
		if keys[i] != k {
			return false
		}
	}
	return true
}

// Classifier assigns entry types. It checks overrides in order, then rules
// from the longest key length down to one, and falls back to a default.
// A Classifier is immutable once built and safe for concurrent use.
type Classifier struct {
	overrides []Override
	buckets   [][]Rule // indexed by key length
	fallback  Category
}

// NewClassifier builds a classifier. Rules keep their given order within
// each key length; the first exact match wins. Returns EINVALID if any rule
// or override carries an invalid entry type or a rule has an empty key.
func NewClassifier(fallback Category, overrides []Override, rules []Rule) (*Classifier, error) {
	if !fallback.Valid() {
		return nil, Errorf(EINVALID, "invalid fallback entry type")
	}

	c := &Classifier{fallback: fallback}

	for i, o := range overrides {
		if !o.Type.Valid() {
			return nil, Errorf(EINVALID, "override %d has an invalid entry type", i)
		}
		c.overrides = append(c.overrides, o)
	}

	maxLen := 0
	for i, r := range rules {
		if len(r.Key) == 0 {
			return nil, Errorf(EINVALID, "rule %d has an empty key", i)
		}
		if !r.Type.Valid() {
			return nil, Errorf(EINVALID, "rule %v has an invalid entry type", r.Key)
		}
		maxLen = max(maxLen, len(r.Key))
	}

	c.buckets = make([][]Rule, maxLen+1)
	for _, r := range rules {
		r.Key = append([]string(nil), r.Key...)
		c.buckets[len(r.Key)] = append(c.buckets[len(r.Key)], r)
	}

	return c, nil
}

// Fallback returns the type assigned when nothing matches.
func (c *Classifier) Fallback() Category {
	return c.fallback
}

// Override returns the type of the first override matching in. Overrides
// never look at Keys.
func (c *Classifier) Override(in ClassifyInput) (Category, bool) {
	for _, o := range c.overrides {
		if o.Match(in) {
			return o.Type, true
		}
	}
	return categoryInvalid, false
}

// Classify returns the entry type for in. It always returns a valid type.
func (c *Classifier) Classify(in ClassifyInput) Category {
	if typ, ok := c.Override(in); ok {
		return typ
	}

	for n := len(c.buckets) - 1; n > 0; n-- {
		for _, r := range c.buckets[n] {
			if r.match(in.Keys) {
				return r.Type
			}
		}
	}

	return c.fallback
}
