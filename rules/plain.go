package rules

import "github.com/fwojciec/dashdoc"

// Plain returns a family without rules: every page is a Guide. It is meant
// for trying out new documentation sites before writing rules for them.
func Plain() *dashdoc.Family {
	return &dashdoc.Family{
		Name:       "plain",
		Title:      "Test Amazon Docset",
		Keys:       dashdoc.KeyFilename,
		Classifier: mustClassifier(dashdoc.DefaultCategory, nil, nil),
		Manifest: dashdoc.Manifest{
			{Key: dashdoc.KeyPlatformFamily, Value: "Test Amazon Docset"},
		},
	}
}
