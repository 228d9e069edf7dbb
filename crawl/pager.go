// Package crawl walks paginated listings: it fetches page after page,
// parses each one and decides when the listing is exhausted.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/listing"
	"github.com/fwojciec/listing/bloom"
)

// Deduplication sizing. Listings shift while they are paged, so the same
// gallery can show up on two consecutive pages.
const (
	// expectedRecordsPerPage sizes the Bloom filter per page walked.
	expectedRecordsPerPage = 100
	// defaultExpectedPages caps the pages the filter is sized for.
	defaultExpectedPages = 1000
	// dedupFalsePositiveRate is the acceptable chance of dropping a new gallery.
	dedupFalsePositiveRate = 1e-7
)

// StopReason tells why a walk ended without error.
type StopReason int

// Stop reasons.
const (
	StopLastPage StopReason = iota
	StopNotFound
	StopOutOfRange
	StopMaxPages
	StopRepeatedPage
)

func (r StopReason) String() string {
	switch r {
	case StopLastPage:
		return "last page"
	case StopNotFound:
		return "no hits"
	case StopOutOfRange:
		return "out of range"
	case StopMaxPages:
		return "page limit"
	case StopRepeatedPage:
		return "repeated page"
	}
	return "unknown"
}

// Summary holds the outcome of a walk.
type Summary struct {
	Pages      int
	Records    int
	Duplicates int
	Reason     StopReason
}

// RecordFunc receives each new record together with the zero-based page it
// was found on. Returning an error aborts the walk.
type RecordFunc func(page int, r listing.Record) error

// Pager walks the pages of one listing.
type Pager struct {
	Fetcher     listing.Fetcher
	Parser      listing.Parser
	RateLimiter listing.DomainLimiter
	Source      listing.Source

	// MaxPages bounds the number of pages fetched. Zero means no bound.
	MaxPages int

	// RetryDelays are the fetch backoff delays; nil uses DefaultRetryDelays.
	RetryDelays []time.Duration

	// Store receives the body of every new page before it is parsed. Optional.
	Store listing.PageStore

	// Log receives retry notices. Optional.
	Log LogFunc
}

// Walk fetches the listing at baseURL page by page and calls fn for every
// record not seen on an earlier page. It stops at the end of the listing,
// which for lofi sources is only known once a page reports it is the last
// or the index reports the page is out of range. Parse and fetch failures
// abort the walk and are returned with the summary so far.
func (p *Pager) Walk(ctx context.Context, baseURL string, fn RecordFunc) (Summary, error) {
	var summary Summary

	u, err := url.Parse(baseURL)
	if err != nil {
		return summary, listing.Errorf(listing.EINVALID, "invalid listing URL: %v", err)
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	// Most walks end long before a large page limit, so the filter is sized
	// for at most defaultExpectedPages.
	expectedPages := defaultExpectedPages
	if p.MaxPages > 0 {
		expectedPages = min(p.MaxPages, defaultExpectedPages)
	}
	seen := bloom.NewFilter(uint(expectedPages*expectedRecordsPerPage), dedupFalsePositiveRate)

	var prevHash uint64
	for page := 0; ; page++ {
		if p.MaxPages > 0 && page >= p.MaxPages {
			summary.Reason = StopMaxPages
			return summary, nil
		}

		pageURL, err := listing.PageURL(baseURL, page)
		if err != nil {
			return summary, err
		}

		if p.RateLimiter != nil {
			if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
				return summary, err
			}
		}

		body, err := FetchWithRetry(ctx, pageURL, p.Fetcher.Fetch, p.Log, delays)
		if err != nil {
			return summary, fmt.Errorf("fetch page %d: %w", page, err)
		}

		// The index serves the last page again for some out of range requests
		hash := xxhash.Sum64String(body)
		if page > 0 && hash == prevHash {
			summary.Reason = StopRepeatedPage
			return summary, nil
		}
		prevHash = hash

		if p.Store != nil {
			if err := p.Store.Save(ctx, page, body); err != nil {
				return summary, fmt.Errorf("save page %d: %w", page, err)
			}
		}

		result, err := p.Parser.Parse(body, p.Source)
		if listing.ErrorCode(err) == listing.ERANGE {
			summary.Reason = StopOutOfRange
			return summary, nil
		} else if err != nil {
			return summary, fmt.Errorf("parse page %d: %w", page, err)
		}
		summary.Pages++

		for _, r := range result.Records {
			if seen.TestAndAdd(r.Key()) {
				summary.Duplicates++
				continue
			}
			summary.Records++
			if err := fn(page, r); err != nil {
				return summary, err
			}
		}

		switch {
		case result.Pages == listing.NotFound:
			summary.Reason = StopNotFound
			return summary, nil
		case result.Pages == listing.CurrentPageIsLast:
			summary.Reason = StopLastPage
			return summary, nil
		case result.Pages.Known() && page+1 >= int(result.Pages):
			summary.Reason = StopLastPage
			return summary, nil
		}
	}
}
