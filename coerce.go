package qrtables

import (
	"strconv"
	"strings"
)

// ParseCell converts cell text to a non-negative integer. Surrounding
// whitespace is ignored; anything other than a run of ASCII digits that fits
// in 32 bits fails with EMALFORMED.
func ParseCell(text string) (uint32, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, Errorf(EMALFORMED, "empty cell")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, Errorf(EMALFORMED, "%q is not a non-negative integer", text)
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, Errorf(EMALFORMED, "%q is out of range", text)
	}
	return uint32(v), nil
}

// CellValue parses the cell at column of row.
func CellValue(row NormalizedRow, column int) (uint32, error) {
	if column < 0 || column >= len(row.Cells) {
		return 0, Errorf(ESTRUCTURE, "row %d has %d cells, column %d required", row.Index, len(row.Cells), column)
	}
	v, err := ParseCell(row.Cells[column])
	if err != nil {
		return 0, Errorf(EMALFORMED, "row %d column %d: %s", row.Index, column, ErrorMessage(err))
	}
	return v, nil
}
