package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docsearch.Errorf(docsearch.EINVALID, "use --force to confirm deletion")
	}

	count, err := deps.Entries.DeleteEntriesByCategory(deps.Ctx, c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	if count == 0 {
		fmt.Fprintf(deps.Stderr, "error: category %q not found. Use 'docsearch list' to see indexed categories.\n", c.Category)
		return docsearch.Errorf(docsearch.ENOTFOUND, "category %q not found", c.Category)
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d entries from category %q\n", count, c.Category)
	return nil
}
