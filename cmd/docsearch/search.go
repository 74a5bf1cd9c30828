package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/fwojciec/docsearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	searcher, err := loadSearcher(deps, c.Category)
	if err != nil {
		return err
	}

	query := strings.Join(c.Query, " ")
	results := searcher.Search(query)

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", query)
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, docsearch.FormatResults(results))
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, plainText(r.HighlightedTitle))
		fmt.Fprintf(deps.Stdout, "   %s\n", r.Entry.URL)
		if r.Snippet != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", plainText(r.Snippet))
		}
	}

	return nil
}

// plainText strips highlight markup for terminal output.
func plainText(s string) string {
	s = strings.ReplaceAll(s, "<mark>", "")
	s = strings.ReplaceAll(s, "</mark>", "")
	return html.UnescapeString(s)
}
