package docsearch

import "context"

// Fetcher retrieves HTML from URLs during ingestion. The search
// subsystem itself never fetches; ingestion runs ahead of time to
// build the corpus the searcher is handed at startup.
type Fetcher interface {
	// Fetch retrieves the HTML content at the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
