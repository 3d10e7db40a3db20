package ds

// ShallowCopy clones a slice one level deep. Writes through the clone
// never reach the original's backing array.
func ShallowCopy[T any](ts []T) []T {
	return append(make([]T, 0, len(ts)), ts...)
}
