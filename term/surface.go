package term

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fwojciec/docsearch"
)

// Ensure Surface implements docsearch.Surface at compile time.
var _ docsearch.Surface = (*Surface)(nil)

// Surface renders search results below the prompt line using ANSI
// escape sequences. It saves and restores the cursor around every
// draw so the caller's prompt position survives rendering.
type Surface struct {
	out io.Writer
}

// NewSurface creates a Surface writing to out.
func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out}
}

// Render displays the result list with the given selected index.
func (s *Surface) Render(results []docsearch.Result, selected int) {
	var b strings.Builder
	b.WriteString("\x1b[s\r\n\x1b[0J")
	for i, r := range results {
		marker := "  "
		if i == selected {
			marker = "\x1b[7m>\x1b[0m "
		}
		fmt.Fprintf(&b, "%s%s\r\n", marker, ansiHighlight(r.HighlightedTitle))
		fmt.Fprintf(&b, "    \x1b[2m%s\x1b[0m\r\n", r.Entry.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "    %s\r\n", ansiHighlight(r.Snippet))
		}
	}
	b.WriteString("\x1b[u")
	fmt.Fprint(s.out, b.String())
}

// RenderNoResults displays a "no results" message for the query
// together with the static suggestions.
func (s *Surface) RenderNoResults(query string) {
	var b strings.Builder
	fmt.Fprintf(&b, "\x1b[s\r\n\x1b[0J  no results for %q\r\n", query)
	for _, suggestion := range docsearch.NoResultsSuggestions {
		fmt.Fprintf(&b, "  \x1b[2m%s\x1b[0m\r\n", suggestion)
	}
	b.WriteString("\x1b[u")
	fmt.Fprint(s.out, b.String())
}

// Clear removes any displayed results.
func (s *Surface) Clear() {
	fmt.Fprint(s.out, "\x1b[s\r\n\x1b[0J\x1b[u")
}

// Focus is a no-op: terminal input is always focused.
func (s *Surface) Focus() {}

// ansiHighlight converts highlighted HTML to terminal output: mark
// tags become bold underline, entities are decoded back to text.
func ansiHighlight(text string) string {
	text = strings.ReplaceAll(text, "<mark>", "\x1b[1;4m")
	text = strings.ReplaceAll(text, "</mark>", "\x1b[0m")
	return html.UnescapeString(text)
}
