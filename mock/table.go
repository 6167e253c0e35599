package mock

import (
	"github.com/fwojciec/qrtables"
)

var _ qrtables.TableReader = (*TableReader)(nil)

// TableReader is a mock implementation of qrtables.TableReader.
type TableReader struct {
	ReadTableFn func(html string, selector string) ([]qrtables.RawRow, error)
}

func (r *TableReader) ReadTable(html string, selector string) ([]qrtables.RawRow, error) {
	return r.ReadTableFn(html, selector)
}
