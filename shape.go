package qrtables

// ValidateShape returns ESHAPE naming the first bucket whose length differs
// from expected.
func ValidateShape(buckets []Bucket, expected int) error {
	for _, b := range buckets {
		if len(b.Values) != expected {
			return Errorf(ESHAPE, "bucket %s has %d values, expected %d", b.Name, len(b.Values), expected)
		}
	}
	return nil
}
