package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/listing"
	"github.com/fwojciec/listing/crawl"
	"github.com/fwojciec/listing/fs"
	"github.com/fwojciec/listing/goquery"
	listinghttp "github.com/fwojciec/listing/http"
	"github.com/fwojciec/listing/regexp"
	listingslog "github.com/fwojciec/listing/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Categories resolves category labels. Set before calling Run().
	Categories listing.CategoryLookup
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Categories: listing.LookupCategory,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("listing"),
		kong.Description("Parse gallery listing pages of the standard and lofi layouts"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'listing --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Parser = listingslog.NewLoggingParser(regexp.NewParser(m.Categories), deps.Logger)
	deps.Detector = goquery.NewDetector()

	if strings.HasPrefix(kongCtx.Command(), "fetch") {
		fetcher := listinghttp.NewFetcher(
			listinghttp.WithTimeout(cli.Fetch.Timeout),
			listinghttp.WithUserAgent(cli.Fetch.UserAgent),
			listinghttp.WithCookie(cli.Fetch.Cookie),
		)
		defer fetcher.Close()

		deps.Fetcher = listingslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.RateLimiter = crawl.NewDomainLimiter(cli.Fetch.RPS)
		if cli.Fetch.Save != "" {
			deps.Store = fs.NewFileStoreAt(cli.Fetch.Save)
		}
	}

	return kongCtx.Run(deps)
}
