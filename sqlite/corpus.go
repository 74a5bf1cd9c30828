package sqlite

import (
	"context"

	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var _ docsearch.EntrySource = (*CorpusLoader)(nil)

// CorpusLoader adapts the entries table into the corpus-supply
// collaborator the search subsystem expects: a one-shot load of all
// entries at startup. The search side never writes back.
type CorpusLoader struct {
	entries docsearch.EntryService

	// Category restricts the corpus to a single category.
	// Empty means all categories.
	Category string
}

// NewCorpusLoader creates a CorpusLoader over the given entry service.
func NewCorpusLoader(entries docsearch.EntryService) *CorpusLoader {
	return &CorpusLoader{entries: entries}
}

// LoadEntries returns all stored entries in category/position order.
func (l *CorpusLoader) LoadEntries(ctx context.Context) ([]docsearch.Entry, error) {
	filter := docsearch.EntryFilter{}
	if l.Category != "" {
		filter.Category = &l.Category
	}

	recs, err := l.entries.FindEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries := make([]docsearch.Entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, rec.Entry)
	}
	return entries, nil
}
