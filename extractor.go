package docsearch

// ExtractResult holds the content and metadata extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Category is the page's primary category, if the page declares one.
	Category string

	// Keywords are search hints from page metadata (meta keywords,
	// article tags). May be empty.
	Keywords []string
}

// Extractor extracts main content and search metadata from HTML pages,
// removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title and keywords come from page metadata (meta tags,
	// JSON+LD, etc.). The content HTML has boilerplate removed but
	// preserves structure.
	Extract(html string) (*ExtractResult, error)
}
