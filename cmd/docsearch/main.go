package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/gemini"
	"github.com/fwojciec/docsearch/goquery"
	"github.com/fwojciec/docsearch/htmltomarkdown"
	dochttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/ingest"
	docslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/sqlite"
	"github.com/fwojciec/docsearch/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Entry service for end-to-end testing.
	EntryService docsearch.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.EntryService = sqlite.NewEntryService(m.DB)
	deps.DB = m.DB
	deps.Entries = m.EntryService

	var sitemaps docsearch.SitemapService = dochttp.NewSitemapService(nil)
	if deps.Logger != nil {
		sitemaps = docslog.NewLoggingSitemapService(sitemaps, deps.Logger)
	}
	deps.Sitemaps = sitemaps

	if cmd == "add" {
		var fetcher docsearch.Fetcher = dochttp.NewFetcher()
		if deps.Logger != nil {
			fetcher = docslog.NewLoggingFetcher(fetcher, deps.Logger)
		}

		deps.Ingester = &ingest.Ingester{
			Sitemaps:    deps.Sitemaps,
			Fetcher:     fetcher,
			Extractor:   goquery.NewMetaFallbackExtractor(trafilatura.NewExtractor()),
			Converter:   htmltomarkdown.NewConverter(),
			Entries:     m.EntryService,
			Links:       goquery.ExtractLinks,
			Limiter:     ingest.NewDomainLimiter(1.0),
			Concurrency: cli.Add.Concurrency,
		}
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		searcher, err := loadSearcher(deps, cli.Ask.Category)
		if err != nil {
			return err
		}
		deps.Asker = gemini.NewAsker(client, searcher)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsearch.db"
	}
	dir := filepath.Join(home, ".docsearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsearch.db")
}
