package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements docsearch.Converter at compile time.
var _ docsearch.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert("<h1>Title</h1><p>Some <strong>bold</strong> text.</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "**bold**")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		md, err := c.Convert(`<p>See the <a href="/docs">docs</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[docs](/docs)")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()
		_, err := c.Convert("   ")

		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})
}
