package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	CloudFormation CloudFormationCmd `cmd:"" name:"cloudformation" help:"Convert the AWS CloudFormation User Guide"`
	Redshift       RedshiftCmd       `cmd:"" help:"Convert the Amazon Redshift Database Developer Guide"`
	Plain          PlainCmd          `cmd:"" help:"Convert any AWS guide, indexing every page as a guide"`
	Custom         CustomCmd         `cmd:"" help:"Convert a guide using rules from a YAML file"`
	SitemapURLs    SitemapURLsCmd    `cmd:"" name:"sitemap-urls" help:"Extract page URLs from a sitemap.xml"`
}

// DocsetFlags are the flags shared by the conversion commands. Title and
// SiteURL fall back to the family defaults when empty.
type DocsetFlags struct {
	Title       string `short:"t" help:"Docset title (default: the family title)"`
	SiteURL     string `short:"u" name:"site-url" help:"URL of the documentation site, used to resolve paths and relative links"`
	RootDir     string `short:"r" name:"root-dir" default:"./docs.aws.amazon.com" env:"DASHDOC_ROOT_DIR" help:"Directory holding the downloaded docs"`
	DocsetPath  string `short:"d" name:"docset-path" required:"" help:"Path of the output docset"`
	Icons       string `help:"Directory holding icon.png and icon@2x.png"`
	Concurrency int    `short:"c" default:"4" help:"Pages converted in parallel"`
}

// CloudFormationCmd is the "cloudformation" subcommand.
type CloudFormationCmd struct {
	DocsetFlags `embed:""`
}

// RedshiftCmd is the "redshift" subcommand.
type RedshiftCmd struct {
	DocsetFlags `embed:""`
}

// PlainCmd is the "plain" subcommand.
type PlainCmd struct {
	DocsetFlags `embed:""`

	Identifier string `short:"i" help:"Docset identifier (default: aws- followed by a random UUID)"`
	Family     string `short:"f" default:"Test Amazon Docset" help:"Platform family name for the docset"`
	MainPage   string `short:"m" name:"main-page" help:"Path to the main page of the docset"`
}

// CustomCmd is the "custom" subcommand.
type CustomCmd struct {
	DocsetFlags `embed:""`

	Rules string `required:"" type:"existingfile" help:"YAML file describing the documentation family"`
}

// SitemapURLsCmd is the "sitemap-urls" subcommand.
type SitemapURLsCmd struct {
	File string `arg:"" optional:"" default:"-" help:"Sitemap file, or - for standard input"`
}
