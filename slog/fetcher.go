// Package slog provides log/slog decorators for the qrtables collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/qrtables"
)

// Ensure LoggingFetcher implements qrtables.Fetcher.
var _ qrtables.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetch together with the digest that ends up
// in the generated header, so a verbose run can be matched to its output.
type LoggingFetcher struct {
	next   qrtables.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next qrtables.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher. A successful fetch is logged at
// info level with the page digest; a failed one at error level with its code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch source page",
			"url", url,
			"code", qrtables.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}

	f.logger.Info("fetch source page",
		"url", url,
		"bytes", len(html),
		"digest", qrtables.FormatDigest(xxhash.Sum64String(html)),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
