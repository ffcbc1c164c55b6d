package dashdoc

import "context"

// Manifest keys understood by Dash.
const (
	KeyBundleIdentifier = "CFBundleIdentifier"
	KeyBundleName       = "CFBundleName"
	KeyPlatformFamily   = "DocSetPlatformFamily"
	KeyIndexFilePath    = "dashIndexFilePath"
	KeyFallbackURL      = "DashDocSetFallbackURL"
)

// ManifestField is a single key/value pair of a docset manifest.
type ManifestField struct {
	Key   string
	Value string
}

// Manifest is a flat, ordered string mapping describing a docset.
type Manifest []ManifestField

// Get returns the value for key.
func (m Manifest) Get(key string) (string, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Set returns a copy of m with key set to value. Existing keys keep their
// position; new keys are appended.
func (m Manifest) Set(key, value string) Manifest {
	out := make(Manifest, len(m), len(m)+1)
	copy(out, m)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, ManifestField{Key: key, Value: value})
}

// ManifestWriter writes the docset manifest.
type ManifestWriter interface {
	WriteManifest(ctx context.Context, m Manifest) error
}
