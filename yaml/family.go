// Package yaml loads operator-maintained documentation families from YAML
// rule files, so rule tables can change without touching the classifier.
package yaml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/dashdoc"
	"gopkg.in/yaml.v3"
)

// FamilyFile is the on-disk form of a documentation family.
//
//	name: lambda
//	title: AWS Lambda Developer Guide
//	siteUrl: https://docs.aws.amazon.com/lambda/latest/dg/
//	keys: trail
//	trailOffset: 3
//	default: Guide
//	manifest:
//	  - {key: CFBundleIdentifier, value: aws-lambda-dg}
//	overrides:
//	  - {title: Lambda runtimes, type: Environment}
//	rules:
//	  - {key: [lambda-runtimes.html], type: Environment}
type FamilyFile struct {
	Name        string          `yaml:"name"`
	Title       string          `yaml:"title"`
	SiteURL     string          `yaml:"siteUrl"`
	Keys        string          `yaml:"keys"`
	TrailOffset int             `yaml:"trailOffset"`
	Default     string          `yaml:"default"`
	Manifest    []ManifestField `yaml:"manifest"`
	Overrides   []Override      `yaml:"overrides"`
	Rules       []Rule          `yaml:"rules"`
}

// ManifestField is a manifest key/value pair.
type ManifestField struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Override is the on-disk form of dashdoc.Override.
type Override struct {
	Title              string         `yaml:"title"`
	BreadcrumbLength   int            `yaml:"breadcrumbLength"`
	BreadcrumbSuffixes map[int]string `yaml:"breadcrumbSuffixes"`
	FilenamePrefixes   []string       `yaml:"filenamePrefixes"`
	Type               string         `yaml:"type"`
}

// Rule is the on-disk form of dashdoc.Rule.
type Rule struct {
	Key     []string `yaml:"key"`
	MinKeys int      `yaml:"minKeys"`
	Type    string   `yaml:"type"`
}

// LoadFamilyFile reads a family from a YAML file.
func LoadFamilyFile(path string) (*dashdoc.Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}
	return LoadFamily(bytes.NewReader(data))
}

// LoadFamily decodes a family from YAML. Unknown fields, unknown entry
// types, and invalid rules are rejected with EINVALID.
func LoadFamily(r io.Reader) (*dashdoc.Family, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file FamilyFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, dashdoc.Errorf(dashdoc.EINVALID, "empty rule file")
		}
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "parsing rule file: %v", err)
	}

	return file.Family()
}

// Family converts the file into a dashdoc.Family.
func (f *FamilyFile) Family() (*dashdoc.Family, error) {
	keys, err := parseKeySource(f.Keys)
	if err != nil {
		return nil, err
	}

	fallback := dashdoc.DefaultCategory
	if f.Default != "" {
		if fallback, err = dashdoc.ParseCategory(f.Default); err != nil {
			return nil, err
		}
	}

	overrides := make([]dashdoc.Override, 0, len(f.Overrides))
	for _, o := range f.Overrides {
		typ, err := dashdoc.ParseCategory(o.Type)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, dashdoc.Override{
			Title:              o.Title,
			BreadcrumbLength:   o.BreadcrumbLength,
			BreadcrumbSuffixes: o.BreadcrumbSuffixes,
			FilenamePrefixes:   o.FilenamePrefixes,
			Type:               typ,
		})
	}

	rules := make([]dashdoc.Rule, 0, len(f.Rules))
	for _, r := range f.Rules {
		typ, err := dashdoc.ParseCategory(r.Type)
		if err != nil {
			return nil, err
		}
		rules = append(rules, dashdoc.Rule{Key: r.Key, MinKeys: r.MinKeys, Type: typ})
	}

	classifier, err := dashdoc.NewClassifier(fallback, overrides, rules)
	if err != nil {
		return nil, err
	}

	manifest := make(dashdoc.Manifest, 0, len(f.Manifest))
	for _, m := range f.Manifest {
		manifest = manifest.Set(m.Key, m.Value)
	}

	family := &dashdoc.Family{
		Name:        f.Name,
		Title:       f.Title,
		SiteURL:     f.SiteURL,
		Keys:        keys,
		TrailOffset: f.TrailOffset,
		Classifier:  classifier,
		Manifest:    manifest,
	}
	if err := family.Validate(); err != nil {
		return nil, err
	}
	return family, nil
}

func parseKeySource(s string) (dashdoc.KeySource, error) {
	switch s {
	case "", "filename":
		return dashdoc.KeyFilename, nil
	case "trail":
		return dashdoc.KeyTrail, nil
	default:
		return 0, dashdoc.Errorf(dashdoc.EINVALID, "unknown key source %q (want filename or trail)", s)
	}
}
