package dbsapi

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a fresh GET for url and returns the decoded body.
	// A non-2xx response is not an error; its body is returned as-is.
	// Transport failures are returned as EFETCH.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
