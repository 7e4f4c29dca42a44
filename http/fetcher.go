// Package http provides an HTTP-based implementation of dbsapi.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dbsapi/dbsapi"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements dbsapi.Fetcher at compile time.
var _ dbsapi.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain GET requests.
// Every call performs a fresh round trip; nothing is cached or retried.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each request. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient replaces the underlying HTTP client.
// The timeout option still applies to it.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout > 0 {
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8
// according to the response's declared or sniffed charset. The status code
// is not inspected: error pages are returned like any other page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", dbsapi.Errorf(dbsapi.EFETCH, "%v", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", dbsapi.Errorf(dbsapi.EFETCH, "%v", err)
	}
	defer resp.Body.Close()

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", dbsapi.Errorf(dbsapi.EFETCH, "decode %s: %v", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", dbsapi.Errorf(dbsapi.EFETCH, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
