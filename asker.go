package docsearch

import "context"

// Asker answers natural language questions about the indexed
// documentation, grounded on search results for the question.
type Asker interface {
	// Ask answers a question using the top search results as context.
	// Returns ENOTFOUND if no entry matches the question.
	Ask(ctx context.Context, question string) (string, error)
}
