package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMeta holds search metadata read from a page's head element, used
// as a fallback when the content extractor finds none.
type PageMeta struct {
	Title    string
	Category string
	Keywords []string
}

// ExtractMeta reads title, category, and keywords from standard meta
// tags: <title>/og:title, article:section, and name="keywords"
// (comma-separated).
func ExtractMeta(html string) (*PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	meta := &PageMeta{}

	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		meta.Title = strings.TrimSpace(v)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if v, ok := doc.Find(`meta[property="article:section"]`).Attr("content"); ok {
		meta.Category = strings.TrimSpace(v)
	}

	if v, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, kw := range strings.Split(v, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}

	return meta, nil
}
