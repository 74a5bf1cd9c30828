package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of docsearch.EntryService.
type EntryService struct {
	CreateEntryFn             func(ctx context.Context, rec *docsearch.EntryRecord) error
	FindEntriesFn             func(ctx context.Context, filter docsearch.EntryFilter) ([]*docsearch.EntryRecord, error)
	DeleteEntriesByCategoryFn func(ctx context.Context, category string) (int, error)
}

func (s *EntryService) CreateEntry(ctx context.Context, rec *docsearch.EntryRecord) error {
	return s.CreateEntryFn(ctx, rec)
}

func (s *EntryService) FindEntries(ctx context.Context, filter docsearch.EntryFilter) ([]*docsearch.EntryRecord, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntriesByCategory(ctx context.Context, category string) (int, error) {
	return s.DeleteEntriesByCategoryFn(ctx, category)
}

var _ docsearch.EntrySource = (*EntrySource)(nil)

// EntrySource is a mock implementation of docsearch.EntrySource.
type EntrySource struct {
	LoadEntriesFn func(ctx context.Context) ([]docsearch.Entry, error)
}

func (s *EntrySource) LoadEntries(ctx context.Context) ([]docsearch.Entry, error) {
	return s.LoadEntriesFn(ctx)
}
