package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/ingest"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Compile filters early so bad patterns fail before any network work.
	var urlFilter *docsearch.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &docsearch.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	if c.Force {
		if _, err := deps.Entries.DeleteEntriesByCategory(deps.Ctx, c.Category); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case ingest.ProgressFinished:
			// Summary printed after ingestion completes
		}
	}

	result, err := deps.Ingester.IngestSite(deps.Ctx, c.Category, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error ingesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s) to category %q\n",
		result.Saved, ingest.FormatBytes(result.Bytes), c.Category)
	return nil
}
