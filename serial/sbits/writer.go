package sbits

import (
	"math/bits"
)

func NewWriter() *Writer {
	return &Writer{data: make([]byte, 0, 32)}
}

func (w *Writer) BitLength() int {
	return w.offset
}

// WriteBits appends the low count bits of value, most significant
// first.
func (w *Writer) WriteBits(value uint32, count int) {
	for i := count - 1; i >= 0; i-- {
		byteIdx := w.offset / 8
		bitIdx := 7 - w.offset%8
		for byteIdx >= len(w.data) {
			w.data = append(w.data, 0)
		}
		if (value>>uint(i))&1 == 1 {
			w.data[byteIdx] |= 1 << uint(bitIdx)
		}
		w.offset++
	}
}

// WriteVarInt appends value as 4-bit nibbles from the low end, each
// followed by a continuation bit, using as few nibbles as possible.
func (w *Writer) WriteVarInt(value uint32) {
	for {
		nibble := value & 0xF
		value >>= 4
		w.WriteBits(nibble, 4)
		if value == 0 {
			w.WriteBits(0, 1)
			return
		}
		w.WriteBits(1, 1)
	}
}

// WriteVarBit appends a 5-bit width followed by the value bits. Width
// zero picks the minimal width for the value, which for value zero is
// the bare zero-width form.
func (w *Writer) WriteVarBit(value uint32, width int) {
	if width == 0 {
		width = bits.Len32(value)
	}
	w.WriteBits(uint32(width), 5)
	w.WriteBits(value, width)
}

// Finish returns the written bytes. The final partial byte, if any,
// is already zero-padded.
func (w *Writer) Finish() []byte {
	return w.data
}
