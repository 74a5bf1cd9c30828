package goquery

import "github.com/fwojciec/docsearch"

// Ensure MetaFallbackExtractor implements docsearch.Extractor.
var _ docsearch.Extractor = (*MetaFallbackExtractor)(nil)

// MetaFallbackExtractor wraps an Extractor and fills in title,
// category, and keywords from the page's meta tags when the wrapped
// extractor leaves them empty.
type MetaFallbackExtractor struct {
	next docsearch.Extractor
}

// NewMetaFallbackExtractor creates a new MetaFallbackExtractor.
func NewMetaFallbackExtractor(next docsearch.Extractor) *MetaFallbackExtractor {
	return &MetaFallbackExtractor{next: next}
}

// Extract delegates to the wrapped extractor and backfills missing
// metadata from the page head.
func (e *MetaFallbackExtractor) Extract(html string) (*docsearch.ExtractResult, error) {
	result, err := e.next.Extract(html)
	if err != nil {
		return nil, err
	}

	if result.Title != "" && result.Category != "" && len(result.Keywords) > 0 {
		return result, nil
	}

	meta, err := ExtractMeta(html)
	if err != nil {
		// Meta parsing is best effort; the extracted content stands.
		return result, nil
	}

	if result.Title == "" {
		result.Title = meta.Title
	}
	if result.Category == "" {
		result.Category = meta.Category
	}
	if len(result.Keywords) == 0 {
		result.Keywords = meta.Keywords
	}

	return result, nil
}
