package docsearch

import (
	"html"
	"strings"
	"unicode"
)

// Ellipsis marks a snippet boundary that was clipped from the content.
const Ellipsis = "..."

// Snippet window sizes, in characters around the first match.
const (
	snippetBefore = 50
	snippetAfter  = 100
)

// ExtractSnippet returns a bounded preview of content centered on the
// first case-insensitive occurrence of query. The window starts
// snippetBefore characters before the match and ends
// len(query)+snippetAfter characters after it, clamped to the content
// bounds, with an Ellipsis on each clipped side.
//
// If the query does not occur, the first maxLength characters are
// returned, with a trailing Ellipsis when the content was truncated.
// All offsets are in runes so multi-byte text is never split.
func ExtractSnippet(content, query string, maxLength int) string {
	runes := []rune(content)
	idx := indexFold(runes, []rune(query))
	if idx < 0 || query == "" {
		if len(runes) <= maxLength {
			return content
		}
		return string(runes[:maxLength]) + Ellipsis
	}

	start := idx - snippetBefore
	if start < 0 {
		start = 0
	}
	end := idx + len([]rune(query)) + snippetAfter
	if end > len(runes) {
		end = len(runes)
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(Ellipsis)
	}
	sb.WriteString(string(runes[start:end]))
	if end < len(runes) {
		sb.WriteString(Ellipsis)
	}
	return sb.String()
}

// Highlight escapes text for safe HTML embedding and wraps every
// case-insensitive occurrence of query with a <mark> element. Because
// escaping happens first and matching is a literal case-folded scan
// (not a regex), query metacharacters cannot alter matching and the
// output never contains an unescaped markup-significant character
// outside the <mark> wrapper itself.
func Highlight(text, query string) string {
	escaped := html.EscapeString(text)
	if query == "" {
		return escaped
	}

	// Match against the escaped form so a query containing markup
	// characters (e.g. "&") still lines up with the escaped text.
	target := []rune(escaped)
	needle := []rune(html.EscapeString(query))

	var sb strings.Builder
	pos := 0
	for pos < len(target) {
		rel := indexFold(target[pos:], needle)
		if rel < 0 {
			sb.WriteString(string(target[pos:]))
			break
		}
		match := pos + rel
		sb.WriteString(string(target[pos:match]))
		sb.WriteString("<mark>")
		sb.WriteString(string(target[match : match+len(needle)]))
		sb.WriteString("</mark>")
		pos = match + len(needle)
	}
	return sb.String()
}

// indexFold returns the rune index of the first case-insensitive
// occurrence of needle in haystack, or -1. An empty needle yields -1.
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if equalFold(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalFold(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
