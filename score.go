package docsearch

import "strings"

// Relevance weights. All contributions are additive; a title that both
// contains and exactly equals the query earns both bonuses.
const (
	scoreTitleContains    = 100
	scoreTitleExact       = 50
	scoreKeywordContains  = 50
	scoreKeywordExact     = 25
	scoreContentContains  = 20
	scoreCategoryContains = 10
)

// Score computes the relevance of an entry for a normalized query
// (already trimmed and lower-cased). All comparisons are
// case-insensitive substring checks; there is no tokenization,
// stemming, or fuzzy matching. A zero score means no match.
//
// Each matching keyword contributes independently, with no cap and no
// deduplication. Content contributes at most once regardless of how
// many times the query occurs in it.
func Score(e Entry, query string) int {
	if query == "" {
		return 0
	}

	var score int

	title := strings.ToLower(e.Title)
	if strings.Contains(title, query) {
		score += scoreTitleContains
	}
	if title == query {
		score += scoreTitleExact
	}

	for _, kw := range e.Keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(kw, query) {
			score += scoreKeywordContains
		}
		if kw == query {
			score += scoreKeywordExact
		}
	}

	if strings.Contains(strings.ToLower(e.Content), query) {
		score += scoreContentContains
	}

	if strings.Contains(strings.ToLower(e.Category), query) {
		score += scoreCategoryContains
	}

	return score
}
