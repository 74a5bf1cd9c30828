// Package ingest builds the searchable corpus from a live
// documentation site. It coordinates sitemap discovery (with a
// link-walk fallback), concurrent fetching, content extraction,
// Markdown conversion, and entry storage. The search subsystem never
// runs any of this; ingestion happens ahead of time and the searcher
// only ever sees the resulting entries.
package ingest

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/docsearch"
	"golang.org/x/sync/errgroup"
)

// LinkExtractor extracts same-host page links from HTML for the
// discovery fallback.
type LinkExtractor func(html, baseURL string) ([]string, error)

// Ingester orchestrates the ingestion of documentation sites.
type Ingester struct {
	Sitemaps  docsearch.SitemapService
	Fetcher   docsearch.Fetcher
	Extractor docsearch.Extractor
	Converter docsearch.Converter
	Entries   docsearch.EntryService

	// Links and Limiter enable the recursive discovery fallback for
	// sites without a sitemap. Both must be set for the fallback to run.
	Links   LinkExtractor
	Limiter docsearch.DomainLimiter

	// Concurrency bounds parallel page fetches. Defaults to 10.
	Concurrency int

	// MaxPages caps the discovery walk. Defaults to 500.
	MaxPages int
}

// Result holds the outcome of an ingestion run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an ingestion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	entry    docsearch.Entry
	err      error
}

// IngestSite ingests every discovered page of a site into the given
// category. The progress callback, if provided, receives events as
// pages are processed. Individual page failures are counted, not
// fatal; only discovery errors abort the run.
func (ing *Ingester) IngestSite(ctx context.Context, category, baseURL string, filter *docsearch.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := ing.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	if len(urls) == 0 && ing.Links != nil && ing.Limiter != nil {
		urls, err = ing.walk(ctx, baseURL, filter)
		if err != nil {
			return nil, fmt.Errorf("link discovery: %w", err)
		}
	}
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- ing.processURL(gctx, category, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect in position order so entries keep site order.
	results := make([]pageResult, total)
	var failed int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	// The sqlite layer allows one writer, so save sequentially.
	var saved, bytes int
	for _, result := range results {
		if result.err != nil {
			failed++
			continue
		}
		rec := &docsearch.EntryRecord{
			Entry:    result.entry,
			Position: result.position,
		}
		if err := ing.Entries.CreateEntry(ctx, rec); err != nil {
			failed++
			continue
		}
		saved++
		bytes += len(result.entry.Content)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &Result{Saved: saved, Failed: failed, Bytes: bytes}, nil
}

// processURL fetches and processes a single page into an entry.
func (ing *Ingester) processURL(ctx context.Context, category string, position int, url string) pageResult {
	result := pageResult{position: position, url: url}

	html, err := ing.Fetcher.Fetch(ctx, url)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := ing.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := ing.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	title := extracted.Title
	if title == "" {
		title = url
	}

	result.entry = docsearch.Entry{
		Title:    title,
		Content:  markdown,
		URL:      url,
		Category: category,
		Keywords: extracted.Keywords,
	}
	return result
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
