package docsearch

import (
	"context"
	"time"
)

// Entry represents a single searchable documentation page.
type Entry struct {
	// Title is the page title. Must be non-empty.
	Title string `json:"title"`

	// Content is the page body as plain text or Markdown.
	Content string `json:"content"`

	// URL identifies the page for navigation. Opaque to the search
	// subsystem; must be non-empty and unique within a corpus.
	URL string `json:"url"`

	// Category groups related pages (e.g., site section or project).
	Category string `json:"category"`

	// Keywords are search hints attached to the page.
	Keywords []string `json:"keywords"`
}

// Corpus is an immutable, in-memory collection of entries. It is built
// exactly once and exposes read-only iteration; iteration order is the
// order entries were supplied in, which also defines tie-breaking order
// for equal-score search results.
type Corpus struct {
	entries []Entry
}

// NewCorpus builds a corpus from the supplied entries. The slice is
// copied, so callers may reuse it afterwards. A nil or empty slice
// yields an empty corpus; searches against it return no results.
//
// Corpus does not validate entries. Missing titles or duplicate URLs
// are a caller contract violation.
func NewCorpus(entries []Entry) *Corpus {
	c := &Corpus{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Len returns the number of entries in the corpus.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Entries returns the corpus entries in iteration order.
// Callers must not modify the returned slice.
func (c *Corpus) Entries() []Entry {
	return c.entries
}

// EntrySource supplies the corpus entries once at startup. The search
// subsystem never fetches or refreshes entries itself.
type EntrySource interface {
	LoadEntries(ctx context.Context) ([]Entry, error)
}

// EntryRecord is a persisted entry with storage metadata, produced by
// ingestion and consumed when loading a corpus.
type EntryRecord struct {
	ID          string    `json:"id"`
	Entry       Entry     `json:"entry"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`

	// Position is the entry's order within its category, preserved so
	// the corpus iterates pages in site order.
	Position int `json:"position"`
}

// Validate returns an error if the record contains invalid fields.
func (r *EntryRecord) Validate() error {
	if r.Entry.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if r.Entry.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	return nil
}

// EntryService manages persisted entries. This is the write side used
// by ingestion; the search subsystem only ever sees an immutable
// Corpus loaded from it.
type EntryService interface {
	// CreateEntry persists a new entry record.
	CreateEntry(ctx context.Context, rec *EntryRecord) error

	// FindEntries retrieves entry records matching the filter,
	// ordered by category then position.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*EntryRecord, error)

	// DeleteEntriesByCategory removes all entries in a category.
	// Returns the number of entries removed.
	DeleteEntriesByCategory(ctx context.Context, category string) (int, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Category *string `json:"category"`
	URL      *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
