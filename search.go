package docsearch

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Search limits.
const (
	// MinQueryLength is the minimum trimmed query length, in
	// characters, required to run a search. Shorter queries
	// short-circuit to an empty result set.
	MinQueryLength = 2

	// MaxResults caps the number of results returned per search.
	MaxResults = 10

	// SnippetLength bounds the fallback snippet when the query does
	// not occur in an entry's content.
	SnippetLength = 150
)

// Result is one scored search match. Results are ephemeral: they are
// recomputed on every search and never persisted. HighlightedTitle and
// Snippet are freshly derived, HTML-escaped strings safe to embed.
type Result struct {
	Entry            Entry  `json:"entry"`
	Score            int    `json:"score"`
	HighlightedTitle string `json:"highlightedTitle"`
	Snippet          string `json:"snippet"`
}

// SearchService scores free-text queries against a corpus.
type SearchService interface {
	// Search returns up to MaxResults matches ordered by descending
	// relevance. Queries shorter than MinQueryLength after trimming
	// return an empty result set; this is the caller's signal to
	// clear any displayed results, not an error.
	Search(query string) []Result
}

// Ensure Searcher implements SearchService at compile time.
var _ SearchService = (*Searcher)(nil)

// Searcher implements SearchService over an immutable in-memory
// corpus. Every search is a full corpus scan; this is a deliberate
// simplicity tradeoff for small fixed corpora and does not scale past
// a few hundred entries without incremental indexing.
type Searcher struct {
	corpus *Corpus
}

// NewSearcher creates a Searcher over the given corpus.
// A nil corpus is treated as empty.
func NewSearcher(corpus *Corpus) *Searcher {
	if corpus == nil {
		corpus = NewCorpus(nil)
	}
	return &Searcher{corpus: corpus}
}

// Search implements SearchService. It is pure and deterministic:
// identical corpus and query always yield an identical ordered result
// sequence. Ties are broken by corpus iteration order.
func (s *Searcher) Search(query string) []Result {
	q := NormalizeQuery(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return nil
	}

	var results []Result
	for _, e := range s.corpus.Entries() {
		score := Score(e, q)
		if score == 0 {
			continue
		}
		results = append(results, Result{Entry: e, Score: score})
	}

	// Stable sort preserves corpus order between equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	for i := range results {
		results[i].HighlightedTitle = Highlight(results[i].Entry.Title, q)
		snippet := ExtractSnippet(results[i].Entry.Content, q, SnippetLength)
		results[i].Snippet = Highlight(snippet, q)
	}
	return results
}

// NormalizeQuery trims surrounding whitespace and lower-cases a raw
// query, the only normalization applied before matching.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
