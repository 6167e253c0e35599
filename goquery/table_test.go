package goquery_test

import (
	"os"
	"testing"

	"github.com/fwojciec/qrtables"
	"github.com/fwojciec/qrtables/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableReader_ReadTable(t *testing.T) {
	t.Parallel()

	t.Run("reads data rows of the matching table", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table class="table"><tr><th>Other</th></tr><tr><td>x</td></tr></table>
<table class="table table-bordered">
	<tr><th>Version</th><th>Level</th><th>Numeric</th></tr>
	<tr><td rowspan="2">1</td><td>L</td><td> 41 </td></tr>
	<tr><td>M</td><td>34</td></tr>
</table>
</body></html>`

		rows, err := goquery.NewTableReader().ReadTable(html, qrtables.DefaultSelector)

		require.NoError(t, err)
		assert.Equal(t, []qrtables.RawRow{
			{Index: 0, Cells: []string{"1", "L", " 41 "}},
			{Index: 1, Cells: []string{"M", "34"}},
		}, rows)
	})

	t.Run("ignores header cells inside data rows", func(t *testing.T) {
		t.Parallel()

		html := `<table class="table table-bordered">
	<thead><tr><th>Version</th><th>Total</th></tr></thead>
	<tbody><tr><th>1-L</th><td>19</td></tr></tbody>
</table>`

		rows, err := goquery.NewTableReader().ReadTable(html, qrtables.DefaultSelector)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"19"}, rows[0].Cells)
	})

	t.Run("uses the first matching table", func(t *testing.T) {
		t.Parallel()

		html := `<table class="table table-bordered"><tr><th>h</th></tr><tr><td>first</td></tr></table>
<table class="table table-bordered"><tr><th>h</th></tr><tr><td>second</td></tr></table>`

		rows, err := goquery.NewTableReader().ReadTable(html, qrtables.DefaultSelector)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"first"}, rows[0].Cells)
	})

	t.Run("returns no rows for header-only table", func(t *testing.T) {
		t.Parallel()

		html := `<table class="table table-bordered"><tr><th>Version</th></tr></table>`

		rows, err := goquery.NewTableReader().ReadTable(html, qrtables.DefaultSelector)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("returns ENOTFOUND when no table matches", func(t *testing.T) {
		t.Parallel()

		html := `<table class="table"><tr><td>1</td></tr></table>`

		_, err := goquery.NewTableReader().ReadTable(html, qrtables.DefaultSelector)

		assert.Equal(t, qrtables.ENOTFOUND, qrtables.ErrorCode(err))
	})

	t.Run("reads the capacity fixture", func(t *testing.T) {
		t.Parallel()

		html, err := os.ReadFile("../testdata/capacity.html")
		require.NoError(t, err)

		rows, err := goquery.NewTableReader().ReadTable(string(html), qrtables.DefaultSelector)

		require.NoError(t, err)
		require.Len(t, rows, 160)
		assert.Equal(t, []string{"1", "L", "1000", "2000", "3000", "4000"}, rows[0].Cells)
		assert.Equal(t, []string{"M", "1001", "2001", "3001", "4001"}, rows[1].Cells)
		assert.Equal(t, []string{"40", "L", "1156", "2156", "3156", "4156"}, rows[156].Cells)
		for i, row := range rows {
			assert.Equal(t, i, row.Index)
		}
	})
}
