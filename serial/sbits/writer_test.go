package sbits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteBits(t *testing.T) {
	writer := NewWriter()
	writer.WriteBits(0b101, 3)

	assert.Equal(t, 3, writer.BitLength())
	// the unfinished tail of the byte stays zero
	assert.Equal(t, []byte{0b10100000}, writer.Finish())
}

func TestWriteBitsAcrossByteBoundary(t *testing.T) {
	writer := NewWriter()
	writer.WriteBits(0b1111, 4)
	writer.WriteBits(0b000011, 6)
	writer.WriteBits(0b11, 2)

	assert.Equal(t, 12, writer.BitLength())
	assert.Equal(t, []byte{0b11110000, 0b11110000}, writer.Finish())
}

func TestWriteVarIntMinimalNibbles(t *testing.T) {
	expectedLengths := map[uint32]int{
		0:     5,
		15:    5,
		16:    10,
		255:   10,
		256:   15,
		4095:  15,
		4096:  20,
		65535: 20,
	}
	for value, length := range expectedLengths {
		writer := NewWriter()
		writer.WriteVarInt(value)
		assert.Equalf(t, length, writer.BitLength(), "value %d", value)
	}
}

func TestWriteVarBitZero(t *testing.T) {
	writer := NewWriter()
	writer.WriteVarBit(0, 0)

	assert.Equal(t, 5, writer.BitLength())
	assert.Equal(t, []byte{0x00}, writer.Finish())
}
