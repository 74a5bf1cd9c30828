package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, docsearch.EntryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'docsearch add' to ingest a site.")
		return nil
	}

	// Entries arrive ordered by category, so counting runs of the same
	// category preserves order.
	var categories []string
	counts := map[string]int{}
	for _, rec := range entries {
		if counts[rec.Entry.Category] == 0 {
			categories = append(categories, rec.Entry.Category)
		}
		counts[rec.Entry.Category]++
	}

	for _, category := range categories {
		fmt.Fprintf(deps.Stdout, "%s  %d pages\n", category, counts[category])
	}

	return nil
}
