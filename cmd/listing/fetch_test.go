package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/listing"
	main "github.com/fwojciec/listing/cmd/listing"
	"github.com/fwojciec/listing/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gallery(id int64, title string) *listing.Gallery {
	return &listing.Gallery{
		GalleryKey: listing.GalleryKey{ID: id, Token: "tok"},
		Title:      title,
		Rating:     4,
	}
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints records from every page", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var urls []string

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				urls = append(urls, url)
				return url, nil
			},
		}
		parser := &mock.Parser{
			ParseFn: func(body string, source listing.Source) (*listing.Result, error) {
				assert.Equal(t, listing.SourceStandard, source)
				if strings.Contains(body, "page=1") {
					return &listing.Result{Pages: 2, Records: []listing.Record{gallery(2, "Second")}}, nil
				}
				return &listing.Result{Pages: 2, Records: []listing.Record{gallery(1, "First")}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Parser:      parser,
			Fetcher:     fetcher,
			RetryDelays: []time.Duration{},
		}

		cmd := &main.FetchCmd{URL: "https://example.com/?f_search=x", Source: "g", Pages: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/?f_search=x",
			"https://example.com/?f_search=x&page=1",
		}, urls)
		out := stdout.String()
		assert.Contains(t, out, "## First")
		assert.Contains(t, out, "## Second")
		assert.Less(t, strings.Index(out, "## First"), strings.Index(out, "## Second"))
		assert.Contains(t, stderr.String(), "Fetched 2 pages, 2 galleries, 0 duplicates (last page)")
	})

	t.Run("uses the front page of the source without a URL", func(t *testing.T) {
		t.Parallel()

		var got string
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					got = url
					return "", nil
				},
			},
			Parser: &mock.Parser{
				ParseFn: func(string, listing.Source) (*listing.Result, error) {
					return &listing.Result{Pages: listing.CurrentPageIsLast, Records: []listing.Record{}}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		cmd := &main.FetchCmd{Source: "lofi", Pages: 1}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "https://lofi.e-hentai.org/", got)
	})

	t.Run("stops at the page limit", func(t *testing.T) {
		t.Parallel()

		calls := 0
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					calls++
					return url, nil
				},
			},
			Parser: &mock.Parser{
				ParseFn: func(string, listing.Source) (*listing.Result, error) {
					return &listing.Result{Pages: listing.KeepLoading, Records: []listing.Record{gallery(int64(calls), "x")}}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		cmd := &main.FetchCmd{URL: "https://lofi.example.com/", Source: "lofi", Pages: 3}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 3, calls)
		assert.Contains(t, stderr.String(), "(page limit)")
	})

	t.Run("reports fetch failures", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
			Parser:      &mock.Parser{},
			RetryDelays: []time.Duration{},
		}

		cmd := &main.FetchCmd{URL: "https://example.com/", Source: "g", Pages: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("rejects a negative page limit", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FetchCmd{Source: "g", Pages: -1}
		err := cmd.Run(deps)

		assert.Equal(t, listing.EINVALID, listing.ErrorCode(err))
	})

	t.Run("commits saved pages after a complete walk", func(t *testing.T) {
		t.Parallel()

		var saved []int
		committed, aborted := false, false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) { return url, nil },
			},
			Parser: &mock.Parser{
				ParseFn: func(string, listing.Source) (*listing.Result, error) {
					return &listing.Result{Pages: listing.CurrentPageIsLast, Records: []listing.Record{gallery(1, "x")}}, nil
				},
			},
			Store: &mock.PageStore{
				SaveFn: func(_ context.Context, page int, _ string) error {
					saved = append(saved, page)
					return nil
				},
				CommitFn: func() error { committed = true; return nil },
				AbortFn:  func() error { aborted = true; return nil },
			},
			RetryDelays: []time.Duration{},
		}

		cmd := &main.FetchCmd{URL: "https://lofi.example.com/", Source: "lofi", Pages: 0}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []int{0}, saved)
		assert.True(t, committed)
		assert.False(t, aborted)
	})

	t.Run("aborts saved pages when the walk fails", func(t *testing.T) {
		t.Parallel()

		committed, aborted := false, false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) { return url, nil },
			},
			Parser: &mock.Parser{
				ParseFn: func(body string, _ listing.Source) (*listing.Result, error) {
					return nil, listing.ParseFailure(body, "unrecognised page")
				},
			},
			Store: &mock.PageStore{
				SaveFn:   func(context.Context, int, string) error { return nil },
				CommitFn: func() error { committed = true; return nil },
				AbortFn:  func() error { aborted = true; return nil },
			},
			RetryDelays: []time.Duration{},
		}

		cmd := &main.FetchCmd{URL: "https://example.com/", Source: "g", Pages: 1}
		err := cmd.Run(deps)

		assert.Equal(t, listing.EPARSE, listing.ErrorCode(err))
		assert.False(t, committed)
		assert.True(t, aborted)
	})
}
