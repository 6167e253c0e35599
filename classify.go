package qrtables

// Bucket is a named output array, one value per symbol version in
// ascending order.
type Bucket struct {
	Name   string
	Values []uint32
}

// BucketOf returns the round-robin bucket of the row at index.
func BucketOf(index int) int {
	return index % Period
}

// RoundRobin distributes values into Period groups by position modulo Period.
// The value at position i lands in group i%Period at sub-index i/Period.
func RoundRobin[T any](values []T) [][]T {
	groups := make([][]T, Period)
	for i := range groups {
		groups[i] = make([]T, 0, (len(values)+Period-1)/Period)
	}
	for i, v := range values {
		b := BucketOf(i)
		groups[b] = append(groups[b], v)
	}
	return groups
}

// SplitColumns reads one value per column from every row, so each row
// contributes to every bucket. Row order is preserved within each bucket.
func SplitColumns(rows []NormalizedRow, columns []Column) ([]Bucket, error) {
	buckets := make([]Bucket, len(columns))
	for i, c := range columns {
		buckets[i] = Bucket{Name: c.Name, Values: make([]uint32, 0, len(rows))}
	}

	for _, row := range rows {
		for i, c := range columns {
			v, err := CellValue(row, c.Index)
			if err != nil {
				return nil, err
			}
			buckets[i].Values = append(buckets[i].Values, v)
		}
	}
	return buckets, nil
}

// SplitRoundRobin reads a single value from every row and assigns it to the
// bucket selected by the row position modulo Period. columns must hold
// exactly Period entries.
func SplitRoundRobin(rows []NormalizedRow, columns []Column) ([]Bucket, error) {
	if len(columns) != Period {
		return nil, Errorf(EINVALID, "round-robin split requires %d columns, got %d", Period, len(columns))
	}

	values := make([]uint32, 0, len(rows))
	for _, row := range rows {
		v, err := CellValue(row, columns[BucketOf(row.Index)].Index)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	groups := RoundRobin(values)
	buckets := make([]Bucket, Period)
	for i, c := range columns {
		buckets[i] = Bucket{Name: c.Name, Values: groups[i]}
	}
	return buckets, nil
}
