package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/listing"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Parser      listing.Parser
	Detector    listing.LayoutDetector
	Fetcher     listing.Fetcher
	RateLimiter listing.DomainLimiter

	// Store keeps raw pages during fetch. Nil disables saving.
	Store listing.PageStore

	// RetryDelays overrides the fetch backoff; nil uses the crawl defaults.
	RetryDelays []time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch and parse to stderr"`

	Parse ParseCmd `cmd:"" help:"Parse saved listing pages"`
	Fetch FetchCmd `cmd:"" help:"Fetch and parse the pages of a listing"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Saved listing pages"`
	Source string   `short:"s" default:"auto" enum:"auto,g,ex,lofi" help:"Page layout source (auto, g, ex, lofi)"`
	JSON   bool     `short:"j" help:"Print records as JSON lines"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL       string        `arg:"" optional:"" help:"Listing URL (defaults to the front page of the source)"`
	Source    string        `short:"s" default:"g" enum:"g,ex,lofi" help:"Site variant (g, ex, lofi)"`
	Pages     int           `short:"n" default:"1" help:"Maximum pages to fetch, 0 for all"`
	RPS       float64       `default:"1" env:"LISTING_RPS" help:"Requests per second per host, 0 to disable"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent string        `default:"listing/1.0" env:"LISTING_USER_AGENT" help:"User-Agent header"`
	Cookie    string        `env:"LISTING_COOKIE" help:"Raw Cookie header for signed-in variants"`
	Save      string        `type:"path" help:"Directory to keep the raw pages in, for later use with parse"`
	JSON      bool          `short:"j" help:"Print records as JSON lines"`
}
