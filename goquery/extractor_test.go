package goquery_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/goquery"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaFallbackExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("backfills missing metadata from the page head", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Extractor{
			ExtractFn: func(html string) (*docsearch.ExtractResult, error) {
				return &docsearch.ExtractResult{ContentHTML: "<p>body</p>"}, nil
			},
		}
		extractor := goquery.NewMetaFallbackExtractor(inner)

		html := `<head>
<title>Fallback Title</title>
<meta property="article:section" content="Guides">
<meta name="keywords" content="a, b">
</head><body><p>body</p></body>`

		result, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Fallback Title", result.Title)
		assert.Equal(t, "Guides", result.Category)
		assert.Equal(t, []string{"a", "b"}, result.Keywords)
		assert.Equal(t, "<p>body</p>", result.ContentHTML)
	})

	t.Run("keeps metadata the wrapped extractor found", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Extractor{
			ExtractFn: func(html string) (*docsearch.ExtractResult, error) {
				return &docsearch.ExtractResult{
					Title:       "Extracted Title",
					Category:    "API",
					Keywords:    []string{"x"},
					ContentHTML: "<p>body</p>",
				}, nil
			},
		}
		extractor := goquery.NewMetaFallbackExtractor(inner)

		result, err := extractor.Extract(`<head><title>Other</title></head>`)

		require.NoError(t, err)
		assert.Equal(t, "Extracted Title", result.Title)
		assert.Equal(t, "API", result.Category)
		assert.Equal(t, []string{"x"}, result.Keywords)
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Extractor{
			ExtractFn: func(html string) (*docsearch.ExtractResult, error) {
				return nil, docsearch.Errorf(docsearch.EINTERNAL, "boom")
			},
		}
		extractor := goquery.NewMetaFallbackExtractor(inner)

		_, err := extractor.Extract("<p>x</p>")

		assert.Equal(t, docsearch.EINTERNAL, docsearch.ErrorCode(err))
	})
}
