package qrtables

// DefaultSelector matches the single data table on the source pages
// (class attribute "table table-bordered").
const DefaultSelector = "table.table.table-bordered"

// RawRow is one data row of a source table as read from the document.
// Index is the 0-based position of the row among the data rows.
type RawRow struct {
	Index int
	Cells []string
}

// NormalizedRow is a RawRow whose cells are column-aligned with every other
// row of the table.
type NormalizedRow struct {
	Index int
	Cells []string
}

// TableReader locates a table in an HTML document and enumerates its data rows.
type TableReader interface {
	// ReadTable returns the data rows of the first table matching selector,
	// without the header row. Returns ENOTFOUND if no table matches.
	ReadTable(html string, selector string) ([]RawRow, error)
}

// Layout identifies how the rows of a table map onto output buckets.
type Layout int

const (
	// LayoutColumns feeds every row into every bucket, one column per bucket.
	LayoutColumns Layout = iota

	// LayoutRoundRobin feeds each row into exactly one bucket, chosen by the
	// row position modulo Period.
	LayoutRoundRobin
)

func (l Layout) String() string {
	switch l {
	case LayoutColumns:
		return "columns"
	case LayoutRoundRobin:
		return "round-robin"
	default:
		return "unknown"
	}
}

// Column binds an output bucket name to the cell index it is read from,
// counted after normalization.
type Column struct {
	Name  string
	Index int
}

// Table describes one source table and the declarations generated from it.
type Table struct {
	Name     string
	URL      string
	Selector string
	Layout   Layout

	// SpannedLabel is set when the version label cell spans Period rows and
	// must be stripped from every row at position 0 mod Period.
	SpannedLabel bool

	// Keyword is the declaration keyword used by the Rust dialect.
	Keyword string

	// Length is the number of values every bucket must hold.
	Length int

	// Buckets lists the output buckets in order. LayoutRoundRobin tables
	// must declare exactly Period buckets.
	Buckets []Column
}

// Validate returns an error if the table definition cannot be extracted.
func (t *Table) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "table name required")
	}
	if t.URL == "" {
		return Errorf(EINVALID, "table %s: source URL required", t.Name)
	}
	if t.Selector == "" {
		return Errorf(EINVALID, "table %s: selector required", t.Name)
	}
	if t.Length <= 0 {
		return Errorf(EINVALID, "table %s: positive length required", t.Name)
	}
	if len(t.Buckets) == 0 {
		return Errorf(EINVALID, "table %s: at least one bucket required", t.Name)
	}
	if t.Layout == LayoutRoundRobin && len(t.Buckets) != Period {
		return Errorf(EINVALID, "table %s: round-robin layout requires %d buckets, got %d", t.Name, Period, len(t.Buckets))
	}
	for _, b := range t.Buckets {
		if b.Name == "" {
			return Errorf(EINVALID, "table %s: bucket name required", t.Name)
		}
		if b.Index < 0 {
			return Errorf(EINVALID, "table %s: bucket %s has negative column %d", t.Name, b.Name, b.Index)
		}
	}
	return nil
}

// CapacityTable is the character capacity table: maximum data length per
// version and error correction level under each encoding mode. Each version
// spans four rows, one per level, and the version label cell spans all four.
// Every row feeds every bucket, so a bucket holds one value per version and
// level, ordered L, M, Q, H within a version.
var CapacityTable = Table{
	Name:         "capacity",
	URL:          "https://www.thonky.com/qr-code-tutorial/character-capacities",
	Selector:     DefaultSelector,
	Layout:       LayoutColumns,
	SpannedLabel: true,
	Keyword:      "const",
	Length:       VersionCount * Period,
	Buckets: []Column{
		{Name: "NUMERIC_SIZE", Index: 1},
		{Name: "ALPHANUMERIC_SIZE", Index: 2},
		{Name: "BYTE_SIZE", Index: 3},
		{Name: "KANJI_SIZE", Index: 4},
	},
}

// ECSizeTable is the error correction table: total data codewords per
// version and error correction level, one row per pair, ordered L, M, Q, H.
var ECSizeTable = Table{
	Name:     "ec-size",
	URL:      "https://www.thonky.com/qr-code-tutorial/error-correction-table",
	Selector: DefaultSelector,
	Layout:   LayoutRoundRobin,
	Keyword:  "static",
	Length:   VersionCount,
	Buckets: []Column{
		{Name: "SIZE_EC_L", Index: 1},
		{Name: "SIZE_EC_M", Index: 1},
		{Name: "SIZE_EC_Q", Index: 1},
		{Name: "SIZE_EC_H", Index: 1},
	},
}
