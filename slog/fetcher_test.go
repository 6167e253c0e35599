package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/qrtables"
	"github.com/fwojciec/qrtables/mock"
	qrslog "github.com/fwojciec/qrtables/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs page digest matching the generated header", func(t *testing.T) {
		t.Parallel()

		const page = `<table class="table table-bordered"><tr><td>41</td></tr></table>`
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return page, nil
			},
		}

		fetcher := qrslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), qrtables.ECSizeTable.URL)

		require.NoError(t, err)
		assert.Equal(t, page, html)
		digest := qrtables.FormatDigest(xxhash.Sum64String(page))
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, `msg="fetch source page"`)
		assert.Contains(t, output, "url="+qrtables.ECSizeTable.URL)
		assert.Contains(t, output, "digest="+digest)
		assert.Contains(t, qrtables.FormatHeader(qrtables.ECSizeTable.URL, xxhash.Sum64String(page)), digest)
	})

	t.Run("logs error code without digest on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", qrtables.Errorf(qrtables.EFETCH, "HTTP 503 for %s", url)
			},
		}

		fetcher := qrslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), qrtables.CapacityTable.URL)

		assert.Equal(t, qrtables.EFETCH, qrtables.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=fetch")
		assert.Contains(t, output, "HTTP 503")
		assert.NotContains(t, output, "digest=")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	fetcher := qrslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}
