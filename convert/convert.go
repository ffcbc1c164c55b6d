// Package convert provides docset conversion orchestration. It coordinates
// parsing, metadata extraction, classification, rewriting, and storage of
// the pages of a mirrored documentation site.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fwojciec/dashdoc"
	"golang.org/x/sync/errgroup"
)

// Converter converts mirrored pages into a docset.
type Converter struct {
	Family    *dashdoc.Family
	Site      *dashdoc.Site
	Parser    dashdoc.DocumentParser
	Extractor dashdoc.MetadataExtractor
	Rewriter  dashdoc.Rewriter
	Documents dashdoc.DocumentWriter
	Index     dashdoc.IndexService
	Manifest  dashdoc.ManifestWriter

	// Concurrency is the number of pages converted in parallel.
	Concurrency int
}

// Result holds the outcome of a conversion.
type Result struct {
	Converted int // pages written to the docset
	Indexed   int // pages added to the search index
	Skipped   int // pages written but left out of the index
	Copied    int // images copied into the docset
}

// ProgressEvent reports progress during a conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	File      string
	Category  dashdoc.Category
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressIndexed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of converting a single page.
type pageResult struct {
	position int
	file     string
	entry    *dashdoc.IndexEntry
	skipErr  error
	copied   int
}

// Convert converts files, builds the search index from the pages that
// could be classified, and writes the manifest. Pages without metadata are
// still rewritten and written but are left out of the index. I/O failures
// abort the conversion.
func (c *Converter) Convert(ctx context.Context, files []string, manifest dashdoc.Manifest, progress ProgressFunc) (*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var waitErr error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, file := range files {
			g.Go(func() error {
				result, err := c.convertPage(gctx, i, file)
				if err != nil {
					return fmt.Errorf("%s: %w", filepath.Base(file), err)
				}
				resultCh <- result
				return nil
			})
		}
		waitErr = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]*pageResult, total)
	var completed atomic.Int64
	for result := range resultCh {
		n := int(completed.Add(1))
		results[result.position] = &result

		if progress == nil {
			continue
		}
		event := ProgressEvent{Completed: n, Total: total, File: result.file}
		if result.skipErr != nil {
			event.Type = ProgressSkipped
			event.Error = result.skipErr
		} else {
			event.Type = ProgressIndexed
			event.Category = result.entry.Type
		}
		progress(event)
	}
	if waitErr != nil {
		return nil, waitErr
	}

	// Assemble the index in page order
	var index dashdoc.Index
	res := &Result{}
	for _, result := range results {
		if result == nil {
			continue
		}
		res.Converted++
		res.Copied += result.copied
		if result.entry == nil {
			res.Skipped++
			continue
		}
		index.Add(result.entry.Name, result.entry.Type, result.entry.Path)
	}
	res.Indexed = index.Len()

	if err := c.Index.CreateIndex(ctx, index.Entries()); err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	if err := c.Manifest.WriteManifest(ctx, manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return res, nil
}

// convertPage parses, rewrites, and writes one page and classifies it when
// metadata is available. Metadata problems are reported in skipErr; the
// returned error is reserved for failures that should stop the run.
func (c *Converter) convertPage(ctx context.Context, position int, file string) (pageResult, error) {
	result := pageResult{position: position, file: file}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	f, err := os.Open(file)
	if err != nil {
		return result, err
	}
	doc, err := c.Parser.Parse(f)
	f.Close()
	if err != nil {
		return result, err
	}

	name := filepath.Base(file)

	// Metadata comes first: rewriting drops the JSON-LD scripts.
	meta, metaErr := c.Extractor.ExtractMetadata(doc)

	stats, err := c.Rewriter.Rewrite(ctx, doc)
	if err != nil {
		return result, fmt.Errorf("rewriting: %w", err)
	}
	result.copied = stats.Copied

	if err := c.Documents.WriteDocument(ctx, name, doc); err != nil {
		return result, fmt.Errorf("writing: %w", err)
	}

	if metaErr != nil {
		result.skipErr = metaErr
		return result, nil
	}

	category, err := c.Family.Classify(c.Site, meta, name)
	if err != nil {
		result.skipErr = err
		return result, nil
	}

	result.entry = &dashdoc.IndexEntry{Name: meta.Title, Type: category, Path: name}
	return result, nil
}
