package ingest

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/bloom"
)

const (
	// walkExpectedURLs is the expected number of URLs for Bloom filter sizing.
	walkExpectedURLs = 10000
	// walkFalsePositiveRate is the acceptable false positive rate for deduplication.
	walkFalsePositiveRate = 0.001

	defaultMaxPages = 500
)

// walk discovers page URLs by breadth-first link traversal from
// baseURL, for sites that publish no sitemap. The walk stays on the
// base host and under the base path, dedupes with a Bloom filter, and
// rate-limits per domain.
func (ing *Ingester) walk(ctx context.Context, baseURL string, filter *docsearch.URLFilter) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid base URL: %v", err)
	}

	maxPages := ing.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	seen := bloom.NewFilter(walkExpectedURLs, walkFalsePositiveRate)
	seen.Add(stripFragment(baseURL))

	queue := []string{baseURL}
	var found []string

	for len(queue) > 0 && len(found) < maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]

		if err := ing.Limiter.Wait(ctx, base.Host); err != nil {
			return nil, err
		}

		html, err := ing.Fetcher.Fetch(ctx, current)
		if err != nil {
			// Unreachable pages are skipped; the walk continues.
			continue
		}

		if filter.Match(current) {
			found = append(found, current)
		}

		links, err := ing.Links(html, current)
		if err != nil {
			continue
		}
		for _, link := range links {
			link = stripFragment(link)
			if seen.Test(link) {
				continue
			}
			seen.Add(link)
			if !underBasePath(base, link) {
				continue
			}
			queue = append(queue, link)
		}
	}

	return found, nil
}

func stripFragment(rawURL string) string {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}

// underBasePath reports whether link sits under the base URL's path.
func underBasePath(base *url.URL, link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	basePath := base.Path
	if basePath == "" || basePath == "/" {
		return true
	}
	return strings.HasPrefix(u.Path, basePath)
}
