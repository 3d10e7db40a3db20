package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange lists start, start+step, and so on up to but excluding
// end.
func MakeRange[T constraints.Integer | constraints.Float](start, end, step T) []T {
	count := int((end - start) / step)
	if count < 0 {
		count = 0
	}
	sequence := make([]T, 0, count+1)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
