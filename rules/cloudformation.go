package rules

import "github.com/fwojciec/dashdoc"

// CloudFormation returns the AWS CloudFormation User Guide family. Pages are
// classified by the hyphen-separated tokens of their filename.
//
// Rules last checked against the site on 2024-02-05.
func CloudFormation() *dashdoc.Family {
	overrides := []dashdoc.Override{
		{Title: "AWS::Include transform", Type: dashdoc.EntryMacro},
		{Title: "AWS::LanguageExtensions transform", Type: dashdoc.EntryMacro},
		{
			BreadcrumbLength: 6,
			BreadcrumbSuffixes: map[int]string{
				3: "/template-guide.html",
				4: "/template-anatomy.html",
			},
			Type: dashdoc.EntryKeyword,
		},
		{
			BreadcrumbLength: 6,
			BreadcrumbSuffixes: map[int]string{
				3: "/template-reference.html",
				4: "/cfn-helper-scripts-reference.html",
			},
			Type: dashdoc.EntryCommand,
		},
		// AWS::S3::Bucket and friends live in AWS_S3_Bucket.html and similar.
		{FilenamePrefixes: []string{"AWS_", "Alexa_"}, Type: dashdoc.EntryNamespace},
	}

	rules := []dashdoc.Rule{
		{Key: key("intrinsic", "function", "reference", "foreach", "example"), Type: dashdoc.EntrySample},
		{Key: key("intrinsic", "function", "reference", "foreach", "examples"), Type: dashdoc.EntrySample},

		{Key: key("crpg", "ref", "requests"), Type: dashdoc.EntryObject},
		{Key: key("crpg", "ref", "responses"), Type: dashdoc.EntryObject},
		{Key: key("crpg", "ref", "requesttypes"), MinKeys: 4, Type: dashdoc.EntryMethod},
		{Key: key("intrinsic", "function", "reference"), Type: dashdoc.EntryFunction},

		{Key: key("alexa", "properties"), Type: dashdoc.EntryProperty},
		{Key: key("alexa", "resource"), Type: dashdoc.EntryResource},
		{Key: key("aws", "attribute"), Type: dashdoc.EntryAttribute},
		{Key: key("aws", "properties"), Type: dashdoc.EntryProperty},
		{Key: key("aws", "resource"), Type: dashdoc.EntryResource},
		{Key: key("transform", "aws"), Type: dashdoc.EntryMacro},

		{Key: key("quickref"), Type: dashdoc.EntrySample},
	}

	return &dashdoc.Family{
		Name:       "cloudformation",
		Title:      "AWS CloudFormation User Guide",
		SiteURL:    "https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/",
		Keys:       dashdoc.KeyFilename,
		Classifier: mustClassifier(dashdoc.DefaultCategory, overrides, rules),
		Manifest: dashdoc.Manifest{
			{Key: dashdoc.KeyBundleIdentifier, Value: "aws-cloudformation-ug"},
			{Key: dashdoc.KeyPlatformFamily, Value: "AWS CloudFormation"},
			{Key: dashdoc.KeyIndexFilePath, Value: "Welcome.html"},
		},
	}
}
