package qrtables

// SpansLabel reports whether the row at index carries the version label cell.
// The label spans Period rows in the source table, so once the table is
// flattened into per-row cell lists only the first row of each group has it.
func SpansLabel(index int) bool {
	return index%Period == 0
}

// CheckPeriod returns ESTRUCTURE unless n is a positive multiple of Period.
func CheckPeriod(n int) error {
	if n <= 0 || n%Period != 0 {
		return Errorf(ESTRUCTURE, "table has %d rows, expected a positive multiple of %d", n, Period)
	}
	return nil
}

// NormalizeRow drops the version label cell if the row carries one.
// The returned row never shares its cell slice with the input.
func NormalizeRow(row RawRow) (NormalizedRow, error) {
	cells := row.Cells
	if SpansLabel(row.Index) {
		if len(cells) == 0 {
			return NormalizedRow{}, Errorf(ESTRUCTURE, "row %d: missing version label cell", row.Index)
		}
		cells = cells[1:]
	}
	return NormalizedRow{
		Index: row.Index,
		Cells: append([]string(nil), cells...),
	}, nil
}

// NormalizeRows column-aligns a table whose version label spans Period rows.
// Nothing is returned unless every row normalizes.
func NormalizeRows(rows []RawRow) ([]NormalizedRow, error) {
	return alignRows(rows, true)
}

// alignRows checks the row count and row positions, then normalizes every
// row. Without a spanned label each row is copied unchanged.
func alignRows(rows []RawRow, spanned bool) ([]NormalizedRow, error) {
	if err := CheckPeriod(len(rows)); err != nil {
		return nil, err
	}

	aligned := make([]NormalizedRow, 0, len(rows))
	for i, row := range rows {
		if row.Index != i {
			return nil, Errorf(ESTRUCTURE, "row at position %d is tagged with index %d", i, row.Index)
		}
		if !spanned {
			aligned = append(aligned, NormalizedRow{
				Index: row.Index,
				Cells: append([]string(nil), row.Cells...),
			})
			continue
		}
		n, err := NormalizeRow(row)
		if err != nil {
			return nil, err
		}
		aligned = append(aligned, n)
	}
	return aligned, nil
}
