package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/ingest"
	docslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Entries  docsearch.EntryService
	Sitemaps docsearch.SitemapService
	Ingester *ingest.Ingester
	Asker    docsearch.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Add         AddCmd         `cmd:"" help:"Ingest a documentation site into a category"`
	List        ListCmd        `cmd:"" help:"List indexed categories"`
	Delete      DeleteCmd      `cmd:"" help:"Delete a category and its entries"`
	Search      SearchCmd      `cmd:"" help:"Search the indexed documentation"`
	Interactive InteractiveCmd `cmd:"" help:"Search interactively with live results"`
	Serve       ServeCmd       `cmd:"" help:"Serve the search API over HTTP"`
	Ask         AskCmd         `cmd:"" help:"Ask a question about the indexed documentation"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Category    string   `arg:"" help:"Category name"`
	URL         string   `arg:"" help:"Documentation site URL"`
	Force       bool     `short:"f" help:"Delete existing category first"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Category string `arg:"" help:"Category name"`
	Force    bool   `help:"Confirm deletion"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    []string `arg:"" help:"Search query"`
	Category string   `help:"Restrict the search to a category"`
	Full     bool     `help:"Show full content of matching pages"`
}

// InteractiveCmd is the "interactive" subcommand.
type InteractiveCmd struct {
	Category string `help:"Restrict the search to a category"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":8080" help:"Listen address"`
	Category string `help:"Restrict the search to a category"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask about the documentation"`
	Category string   `help:"Restrict the search to a category"`
}

// loadSearcher builds a SearchService over the entries currently in
// the database, optionally restricted to a category.
func loadSearcher(deps *Dependencies, category string) (docsearch.SearchService, error) {
	loader := sqlite.NewCorpusLoader(deps.Entries)
	loader.Category = category

	entries, err := loader.LoadEntries(deps.Ctx)
	if err != nil {
		return nil, err
	}

	var searcher docsearch.SearchService = docsearch.NewSearcher(docsearch.NewCorpus(entries))
	if deps.Logger != nil {
		searcher = docslog.NewLoggingSearchService(searcher, deps.Logger)
	}
	return searcher, nil
}
