package sbits

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Offset() int {
	return r.offset
}

func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.offset
}

// PeekBits returns the next n bits without advancing the cursor. The
// first bit read lands in the most significant position of the result.
func (r *Reader) PeekBits(n int) (uint32, error) {
	if n > r.Remaining() {
		return 0, ErrOutOfData{
			Requested: n,
			Remaining: r.Remaining(),
			Offset:    r.offset,
		}
	}
	value := uint32(0)
	for i := 0; i < n; i++ {
		pos := r.offset + i
		bit := (r.data[pos/8] >> uint(7-pos%8)) & 1
		value = value<<1 | uint32(bit)
	}
	return value, nil
}

func (r *Reader) ReadBits(n int) (uint32, error) {
	value, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.offset += n
	return value, nil
}

// ReadVarInt reads up to four groups of a 4-bit nibble followed by a
// continuation bit. Nibbles stack up from the low end, so the first
// group holds the least significant bits. A continuation bit still set
// after the fourth nibble fails with ErrVarIntOverflow.
func (r *Reader) ReadVarInt() (uint32, error) {
	value := uint32(0)
	for shift := 0; shift < 16; shift += 4 {
		nibble, err := r.ReadBits(4)
		if err != nil {
			return 0, err
		}
		value |= nibble << uint(shift)
		cont, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if cont == 0 {
			return value, nil
		}
	}
	return 0, ErrVarIntOverflow{Offset: r.offset}
}

// ReadVarBit reads a 5-bit width followed by that many value bits.
// Width zero means value zero. The width is returned alongside the
// value since streams carry wider-than-minimal fields and re-encoding
// has to reproduce them.
func (r *Reader) ReadVarBit() (uint32, int, error) {
	width, err := r.ReadBits(5)
	if err != nil {
		return 0, 0, err
	}
	value, err := r.ReadBits(int(width))
	if err != nil {
		return 0, 0, err
	}
	return value, int(width), nil
}
