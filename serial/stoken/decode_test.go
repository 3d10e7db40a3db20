package stoken

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monokrome/bl4-sub000/serial/sbits"
)

func TestParseStream(t *testing.T) {
	// 100 0100 0 is a full byte holding VarInt(4)
	tokens, err := ParseStream(sbits.NewReader([]byte{0b10001000}))
	assert.NoError(t, err)
	assert.Equal(t, []Token{VarInt(4)}, tokens)

	// trailing zero bytes come out as genuine separators
	tokens, err = ParseStream(sbits.NewReader([]byte{0b10001000, 0x00}))
	assert.NoError(t, err)
	assert.Equal(
		t,
		[]Token{VarInt(4), Separator(), Separator(), Separator(), Separator()},
		tokens,
	)
}

func TestParseStreamCleanStop(t *testing.T) {
	// seven separators, then two bits that cannot open a token
	tokens, err := ParseStream(sbits.NewReader([]byte{0x00, 0b00000011}))
	assert.NoError(t, err)
	assert.Len(t, tokens, 7)

	tokens, err = ParseStream(sbits.NewReader(nil))
	assert.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestParseStreamParts(t *testing.T) {
	writer := sbits.NewWriter()
	WriteStream(writer, []Token{
		EmptyPart(8),
		SinglePart(252, 97),
		ListPart(250, SoftEntry(), IntEntry(133), IntEntry(139), IntEntry(35)),
		ListPart(254, BitEntry(160, 12)),
	})
	expected := []Token{
		EmptyPart(8),
		SinglePart(252, 97),
		ListPart(250, SoftEntry(), IntEntry(133), IntEntry(139), IntEntry(35)),
		ListPart(254, BitEntry(160, 12)),
	}

	tokens, err := ParseStream(sbits.NewReader(writer.Finish()))

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(tokens), len(expected))
	assert.Equal(t, expected, tokens[:len(expected)])
}

func TestParseStreamStrings(t *testing.T) {
	writer := sbits.NewWriter()
	WriteStream(writer, []Token{String(""), String("EchoLog"), Separator()})

	tokens, err := ParseStream(sbits.NewReader(writer.Finish()))

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(tokens), 3)
	assert.Equal(t, String(""), tokens[0])
	assert.Equal(t, String("EchoLog"), tokens[1])
	assert.Equal(t, Separator(), tokens[2])
}

func TestParseStreamMalformedSubtype(t *testing.T) {
	// part with value flag 0 and subtype 00
	writer := sbits.NewWriter()
	writer.WriteBits(0b101, 3)
	writer.WriteVarInt(9)
	writer.WriteBits(0, 1)
	writer.WriteBits(0b00, 2)

	_, err := ParseStream(sbits.NewReader(writer.Finish()))

	expected := ErrMalformedToken{}
	assert.ErrorAs(t, err, &expected)
	assert.Equal(t, "unknown part subtype", expected.Detail)
}

func TestParseStreamMalformedTerminator(t *testing.T) {
	// single-value part whose terminator is 111 instead of 000
	writer := sbits.NewWriter()
	writer.WriteBits(0b101, 3)
	writer.WriteVarInt(3)
	writer.WriteBits(1, 1)
	writer.WriteVarInt(7)
	writer.WriteBits(0b111, 3)

	_, err := ParseStream(sbits.NewReader(writer.Finish()))

	expected := ErrMalformedToken{}
	assert.ErrorAs(t, err, &expected)
	assert.Equal(t, "single part value not terminated by 000", expected.Detail)
}

func TestParseStreamMalformedVarInt(t *testing.T) {
	// varint keeps its continuation bit set through all four nibbles
	writer := sbits.NewWriter()
	writer.WriteBits(0b100, 3)
	for i := 0; i < 4; i++ {
		writer.WriteBits(0xF, 4)
		writer.WriteBits(1, 1)
	}

	_, err := ParseStream(sbits.NewReader(writer.Finish()))

	expected := ErrMalformedToken{}
	assert.ErrorAs(t, err, &expected)
	assert.Equal(t, "varint continues past 4 nibbles", expected.Detail)
}

func TestParseStreamMalformedListEntry(t *testing.T) {
	// part list holding a nested part prefix
	writer := sbits.NewWriter()
	writer.WriteBits(0b101, 3)
	writer.WriteVarInt(9)
	writer.WriteBits(0, 1)
	writer.WriteBits(0b01, 2)
	writer.WriteBits(0b101, 3)
	writer.WriteVarInt(1)

	_, err := ParseStream(sbits.NewReader(writer.Finish()))

	expected := ErrMalformedToken{}
	assert.ErrorAs(t, err, &expected)
	assert.Equal(t, "unexpected entry prefix in part list", expected.Detail)
}

func TestParseStreamOutOfData(t *testing.T) {
	// string announcing ten characters with nothing behind them
	_, err := ParseStream(sbits.NewReader([]byte{0b11110100}))

	expected := sbits.ErrOutOfData{}
	assert.ErrorAs(t, err, &expected)
}
