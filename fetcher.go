package listing

import "context"

// Fetcher retrieves listing page text from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns it decoded as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// PageStore keeps the raw text of fetched listing pages. Saved pages become
// visible only after Commit.
type PageStore interface {
	// Save stores the body of the zero-based page.
	Save(ctx context.Context, page int, body string) error

	// Commit publishes every saved page.
	Commit() error

	// Abort discards every saved page.
	Abort() error
}
