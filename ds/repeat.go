package ds

// Repeat makes a slice of n copies of initial.
func Repeat[T any](n int, initial T) []T {
	ts := make([]T, n)
	for i := range ts {
		ts[i] = initial
	}
	return ts
}
