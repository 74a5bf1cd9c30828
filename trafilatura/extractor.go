// Package trafilatura provides content extraction for ingested pages
// using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content and search
// metadata from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content plus the
// category and keywords trafilatura finds in page metadata. The first
// declared category wins; tags become keywords.
func (e *Extractor) Extract(rawHTML string) (*docsearch.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	var category string
	if len(result.Metadata.Categories) > 0 {
		category = result.Metadata.Categories[0]
	}

	return &docsearch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Category:    category,
		Keywords:    cleanKeywords(result.Metadata.Tags),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cleanKeywords(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
