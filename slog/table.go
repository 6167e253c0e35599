package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/qrtables"
)

// Ensure LoggingTableReader implements qrtables.TableReader.
var _ qrtables.TableReader = (*LoggingTableReader)(nil)

// LoggingTableReader wraps a TableReader with debug logging.
type LoggingTableReader struct {
	next   qrtables.TableReader
	logger *slog.Logger
}

// NewLoggingTableReader creates a new LoggingTableReader.
func NewLoggingTableReader(next qrtables.TableReader, logger *slog.Logger) *LoggingTableReader {
	return &LoggingTableReader{next: next, logger: logger}
}

// ReadTable delegates to the wrapped reader and logs the row count.
func (r *LoggingTableReader) ReadTable(html string, selector string) (rows []qrtables.RawRow, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read table",
			"selector", selector,
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadTable(html, selector)
}
