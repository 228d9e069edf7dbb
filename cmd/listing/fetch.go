package main

import (
	"fmt"

	"github.com/fwojciec/listing"
	"github.com/fwojciec/listing/crawl"
)

// frontPages are the listing roots used when no URL is given.
var frontPages = map[listing.Source]string{
	listing.SourceStandard:    "https://e-hentai.org/",
	listing.SourceStandardAlt: "https://exhentai.org/",
	listing.SourceLofi:        "https://lofi.e-hentai.org/",
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	source, err := listing.ParseSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	if c.Pages < 0 {
		err := listing.Errorf(listing.EINVALID, "pages must not be negative")
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	baseURL := c.URL
	if baseURL == "" {
		baseURL = frontPages[source]
	}

	pager := &crawl.Pager{
		Fetcher:     deps.Fetcher,
		Parser:      deps.Parser,
		RateLimiter: deps.RateLimiter,
		Source:      source,
		MaxPages:    c.Pages,
		RetryDelays: deps.RetryDelays,
		Store:       deps.Store,
		Log: func(format string, args ...any) {
			if deps.Logger != nil {
				deps.Logger.Warn(fmt.Sprintf(format, args...))
			}
		},
	}

	p := newRecordPrinter(deps.Stdout, c.JSON)
	summary, err := pager.Walk(deps.Ctx, baseURL, func(_ int, r listing.Record) error {
		return p.Print(r)
	})
	if err != nil {
		if deps.Store != nil {
			_ = deps.Store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	if deps.Store != nil {
		if err := deps.Store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: saving pages: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Fetched %d pages, %d galleries, %d duplicates (%s)\n",
		summary.Pages, summary.Records, summary.Duplicates, summary.Reason)
	return nil
}
