package mock

import (
	"context"

	"github.com/fwojciec/listing"
)

var _ listing.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of listing.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ listing.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of listing.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ listing.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of listing.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page int, body string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page int, body string) error {
	return s.SaveFn(ctx, page, body)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
