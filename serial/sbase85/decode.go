package sbase85

import (
	"github.com/monokrome/bl4-sub000/ds"
)

// Decode turns encoded text back into bytes. Symbols are consumed in
// groups of five, each group carrying a 32-bit value in big base-85.
// A trailing group of n symbols is padded with the highest digit and
// contributes its top n-1 bytes, so a lone trailing symbol carries
// nothing.
func Decode(text string) ([]byte, error) {
	digits := make([]int16, len(text))
	for i := 0; i < len(text); i++ {
		ord := ordinals[text[i]]
		if ord < 0 {
			return nil, ErrInvalidAlphabetChar{Char: text[i], Offset: i}
		}
		digits[i] = ord
	}

	result := make([]byte, 0, len(text)/5*4+3)
	for _, group := range ds.MakeChunks(digits, 5) {
		value := uint64(0)
		for _, digit := range group {
			value = value*85 + uint64(digit)
		}
		for i := len(group); i < 5; i++ {
			value = value*85 + 84
		}
		numBytes := 4
		if len(group) < 5 {
			numBytes = len(group) - 1
		}
		for i := 0; i < numBytes; i++ {
			result = append(result, byte(value>>uint((3-i)*8)))
		}
	}
	return result, nil
}
