package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/term"
)

// Run executes the interactive command.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	searcher, err := loadSearcher(deps, c.Category)
	if err != nil {
		return err
	}

	surface := term.NewSurface(deps.Stdout)
	nav := &printNavigator{out: deps.Stdout}
	controller := docsearch.NewController(searcher, surface, nav)

	return term.NewSession(controller, deps.Stdin, deps.Stdout).Run()
}

// printNavigator writes the activated URL so the user can follow it.
type printNavigator struct {
	out io.Writer
}

func (n *printNavigator) Navigate(url string) {
	fmt.Fprintf(n.out, "\r\n%s\r\n", url)
}
