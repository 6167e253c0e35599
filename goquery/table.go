// Package goquery implements qrtables.TableReader on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/qrtables"
	"golang.org/x/net/html/atom"
)

// Ensure TableReader implements qrtables.TableReader at compile time.
var _ qrtables.TableReader = (*TableReader)(nil)

// TableReader reads data rows out of an HTML table.
type TableReader struct{}

// NewTableReader creates a new TableReader.
func NewTableReader() *TableReader {
	return &TableReader{}
}

// ReadTable returns the data rows of the first table matching selector.
// The first row is the header and is skipped. Only td cells are returned,
// in document order, with their text untouched.
func (r *TableReader) ReadTable(html string, selector string) ([]qrtables.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, qrtables.Errorf(qrtables.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, qrtables.Errorf(qrtables.ENOTFOUND, "no table matches %q", selector)
	}

	trs := table.Find("tr")
	if trs.Length() <= 1 {
		return nil, nil
	}

	rows := make([]qrtables.RawRow, 0, trs.Length()-1)
	trs.Slice(1, goquery.ToEnd).Each(func(i int, tr *goquery.Selection) {
		rows = append(rows, qrtables.RawRow{Index: i, Cells: dataCells(tr)})
	})
	return rows, nil
}

// dataCells returns the text of the td children of tr.
func dataCells(tr *goquery.Selection) []string {
	var cells []string
	tr.Children().Each(func(_ int, c *goquery.Selection) {
		if n := c.Get(0); n != nil && n.DataAtom == atom.Td {
			cells = append(cells, c.Text())
		}
	})
	return cells
}
