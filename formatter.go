package docsearch

import "strings"

// FormatResults formats search results for display or LLM context.
// Each result is rendered as a titled block with its URL and content;
// results are separated by blank lines.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		header := r.Entry.Title
		if header == "" {
			header = r.Entry.URL
		}
		parts = append(parts, "## "+header+"\n"+r.Entry.URL+"\n\n"+r.Entry.Content)
	}

	return strings.Join(parts, "\n\n")
}
