// Package mock provides mock implementations of docsearch interfaces
// for testing.
package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docsearch.SearchService.
type SearchService struct {
	SearchFn func(query string) []docsearch.Result
}

func (s *SearchService) Search(query string) []docsearch.Result {
	return s.SearchFn(query)
}
