package docsearch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// The Markdown becomes an entry's searchable content, so snippets
	// read as text rather than markup.
	Convert(html string) (string, error)
}
