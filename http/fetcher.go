// Package http provides an HTTP-based implementation of listing.Fetcher
// and the charset decoding of listing pages.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/listing"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "listing/1.0"

// Ensure Fetcher implements listing.Fetcher at compile time.
var _ listing.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves listing pages using HTTP requests. Response bodies are
// decoded to UTF-8 according to their declared charset.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	cookie    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithCookie sets a raw Cookie header sent with every request. The fetcher
// does not manage sessions; the caller obtains the cookie.
func WithCookie(cookie string) Option {
	return func(f *Fetcher) {
		f.cookie = cookie
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and returns its text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", listing.Errorf(listing.EINVALID, "invalid page URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.cookie != "" {
		req.Header.Set("Cookie", f.cookie)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := Decode(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}

	return body, nil
}

// Decode reads an HTML document and converts it to UTF-8 text. The
// encoding comes from contentType when it names one, otherwise from the
// document's own meta tags.
func Decode(r io.Reader, contentType string) (string, error) {
	cr, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(cr)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// DecodeFile converts the bytes of a saved page to UTF-8 text. Valid UTF-8
// is kept as is, since pages saved by fetch are already decoded while their
// meta tags still name the original encoding.
func DecodeFile(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	return Decode(bytes.NewReader(data), "")
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
