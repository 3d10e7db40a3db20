package sbase85

import (
	"strings"

	"github.com/monokrome/bl4-sub000/ds"
)

// Encode turns bytes into encoded text. Bytes are consumed in groups
// of four, big-endian; a trailing group of n bytes is zero-padded low
// and emits only the first n+1 symbols of its group.
func Encode(data []byte) string {
	builder := strings.Builder{}
	builder.Grow(len(data)/4*5 + 5)
	for _, group := range ds.MakeChunks(data, 4) {
		value := uint64(0)
		for _, b := range group {
			value = value<<8 | uint64(b)
		}
		value <<= uint((4 - len(group)) * 8)
		symbols := [5]byte{}
		for i := 4; i >= 0; i-- {
			symbols[i] = Alphabet[value%85]
			value /= 85
		}
		builder.Write(symbols[:len(group)+1])
	}
	return builder.String()
}
