package qrtables

import "context"

// Fetcher retrieves the HTML of a source page.
type Fetcher interface {
	// Fetch performs a single GET of url and returns the body.
	// Failures are reported with code EFETCH.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
