package rules

import "github.com/fwojciec/dashdoc"

// Navigation trail segments shared by several Redshift rules.
const (
	redshiftSQLCommandRef = "cm_chap_SQLCommandRef.html" // SQL commands reference
	redshiftUsingSQL      = "c_SQL_reference.html"       // Using SQL
)

// Redshift returns the Amazon Redshift Database Developer Guide family.
// Pages are classified by their navigation trail. The first three
// breadcrumb items are the same on every page.
//
// Rules last checked against the site on 2024-01-15.
func Redshift() *dashdoc.Family {
	rules := []dashdoc.Rule{
		{Key: key(redshiftSQLCommandRef, redshiftUsingSQL, "c_Basic_elements.html", "c_Supported_data_types.html"), Type: dashdoc.EntryType},

		{Key: key(redshiftSQLCommandRef, redshiftUsingSQL, "r_expressions.html"), Type: dashdoc.EntryStatement},
		{Key: key(redshiftSQLCommandRef, redshiftUsingSQL, "r_conditions.html"), Type: dashdoc.EntryStatement},

		{Key: key(redshiftSQLCommandRef, "c_SQL_commands.html"), Type: dashdoc.EntryCommand},
		{Key: key(redshiftSQLCommandRef, "c_SQL_functions.html"), Type: dashdoc.EntryFunction},
		{Key: key(redshiftSQLCommandRef, "r_pg_keywords.html"), Type: dashdoc.EntryKeyword}, // Reserved words

		{Key: key("cm_chap_system-tables.html"), Type: dashdoc.EntryBuiltin},     // System tables and views reference
		{Key: key("cm_chap_ConfigurationRef.html"), Type: dashdoc.EntrySetting}, // Configuration reference
		{Key: key("c_sampledb.html"), Type: dashdoc.EntryBuiltin},               // Sample database
	}

	return &dashdoc.Family{
		Name:        "redshift",
		Title:       "Amazon Redshift Database Developer Guide",
		SiteURL:     "https://docs.aws.amazon.com/redshift/latest/dg/",
		Keys:        dashdoc.KeyTrail,
		TrailOffset: 3,
		Classifier:  mustClassifier(dashdoc.DefaultCategory, nil, rules),
		Manifest: dashdoc.Manifest{
			{Key: dashdoc.KeyBundleIdentifier, Value: "aws-redshift-dg"},
			{Key: dashdoc.KeyPlatformFamily, Value: "Amazon Redshift"},
			{Key: dashdoc.KeyIndexFilePath, Value: "welcome.html"},
		},
	}
}
