package sbase85

import (
	"fmt"
)

// Alphabet holds the 85 symbols of the serial text encoding. The order
// is load-bearing: a symbol's index is its digit value.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{/}~"

type (
	ErrInvalidAlphabetChar struct {
		Char   byte
		Offset int
	}
)

func (r ErrInvalidAlphabetChar) Error() string {
	return fmt.Sprintf(
		`invalid character %q at offset %d`,
		r.Char, r.Offset,
	)
}

var ordinals [256]int16

func init() {
	for i := range ordinals {
		ordinals[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		ordinals[Alphabet[i]] = int16(i)
	}
}
