package stoken

import (
	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial/sbits"
)

// WriteStream emits every token back into the writer. Parsing and
// writing are exact inverses over the token kinds that ParseStream
// produces, including recorded varbit widths and separators inside
// part lists.
func WriteStream(writer *sbits.Writer, tokens []Token) {
	for _, token := range tokens {
		writeToken(writer, token)
	}
}

func writeToken(writer *sbits.Writer, token Token) {
	switch token.Kind {
	case KindSeparator:
		writer.WriteBits(0b00, 2)
	case KindSoftSeparator:
		writer.WriteBits(0b01, 2)
	case KindVarInt:
		writer.WriteBits(0b100, 3)
		writer.WriteVarInt(token.Value)
	case KindVarBit:
		writer.WriteBits(0b110, 3)
		writer.WriteVarBit(token.Value, token.Width)
	case KindPart:
		writePart(writer, token)
	case KindString:
		writer.WriteBits(0b111, 3)
		writer.WriteVarInt(uint32(len(token.Str)))
		for _, ch := range []byte(token.Str) {
			writer.WriteBits(uint32(ch), 7)
		}
	default:
		panic(ds.ErrUnreachableCode{Caller: "writeToken"})
	}
}

func writePart(writer *sbits.Writer, token Token) {
	writer.WriteBits(0b101, 3)
	writer.WriteVarInt(token.Index)
	switch token.ValueKind {
	case PartValueSingle:
		writer.WriteBits(1, 1)
		writer.WriteVarInt(token.Value)
		writer.WriteBits(0b000, 3)
	case PartValueNone:
		writer.WriteBits(0, 1)
		writer.WriteBits(0b10, 2)
	case PartValueList:
		writer.WriteBits(0, 1)
		writer.WriteBits(0b01, 2)
		for _, entry := range token.Entries {
			writePartEntry(writer, entry)
		}
		writer.WriteBits(0b00, 2)
	default:
		panic(ds.ErrUnreachableCode{Caller: "writePart"})
	}
}

func writePartEntry(writer *sbits.Writer, entry PartEntry) {
	switch entry.Kind {
	case KindSoftSeparator:
		writer.WriteBits(0b01, 2)
	case KindVarInt:
		writer.WriteBits(0b100, 3)
		writer.WriteVarInt(entry.Value)
	case KindVarBit:
		writer.WriteBits(0b110, 3)
		writer.WriteVarBit(entry.Value, entry.Width)
	default:
		panic(ds.ErrUnreachableCode{Caller: "writePartEntry"})
	}
}
