package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/listing"
	"github.com/fwojciec/listing/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns body after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "body", nil
		}
		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}

		body, err := crawl.FetchWithRetry(context.Background(), "https://e-hentai.org/", fetch, logger, delays)

		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
	})

	t.Run("returns last error when attempts run out", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, url string) (string, error) {
			calls++
			return "", fmt.Errorf("HTTP 503 for %s", url)
		}

		_, err := crawl.FetchWithRetry(context.Background(), "https://e-hentai.org/", fetch, nil, delays)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry invalid requests", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, url string) (string, error) {
			calls++
			return "", listing.Errorf(listing.EINVALID, "invalid page URL")
		}

		_, err := crawl.FetchWithRetry(context.Background(), "::", fetch, nil, delays)

		assert.Equal(t, listing.EINVALID, listing.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("timeout")
		}

		_, err := crawl.FetchWithRetry(ctx, "https://e-hentai.org/", fetch, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
