package sbase85

import (
	"math/bits"

	"github.com/samber/lo"
)

// MirrorBytes reverses the bit order within every byte. The serial
// payload is stored mirrored, and the transform is its own inverse.
func MirrorBytes(data []byte) []byte {
	return lo.Map(
		data,
		func(b byte, _ int) byte {
			return bits.Reverse8(b)
		},
	)
}
