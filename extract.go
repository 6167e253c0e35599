package qrtables

// Extract turns the data rows of t into validated output buckets, in the
// order t declares them. It fails on the first structural, coercion or shape
// error and never returns a partial result.
func Extract(t Table, rows []RawRow) ([]Bucket, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	normalized, err := alignRows(rows, t.SpannedLabel)
	if err != nil {
		return nil, err
	}

	var buckets []Bucket
	switch t.Layout {
	case LayoutColumns:
		buckets, err = SplitColumns(normalized, t.Buckets)
	case LayoutRoundRobin:
		buckets, err = SplitRoundRobin(normalized, t.Buckets)
	default:
		return nil, Errorf(EINVALID, "table %s: unknown layout %d", t.Name, t.Layout)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateShape(buckets, t.Length); err != nil {
		return nil, err
	}
	return buckets, nil
}
