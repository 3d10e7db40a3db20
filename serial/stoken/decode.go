package stoken

import (
	"github.com/pkg/errors"

	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial/sbits"
)

// ParseStream consumes tokens until the stream runs dry. Trailing bits
// that are too few to open another token are left unread; zero bytes
// before that point still parse as genuine separators, which keeps the
// re-encoded stream identical. Running out of data inside a token body
// is an error, as is any malformed structure.
func ParseStream(reader *sbits.Reader) ([]Token, error) {
	tokens := make([]Token, 0, 32)
	for {
		if reader.Remaining() < 2 {
			return tokens, nil
		}
		prefix, err := reader.PeekBits(2)
		if err != nil {
			return nil, errors.Wrap(err, "ParseStream error: peek token prefix")
		}
		if prefix == 0b00 || prefix == 0b01 {
			_, _ = reader.ReadBits(2)
			if prefix == 0b00 {
				tokens = append(tokens, Separator())
			} else {
				tokens = append(tokens, SoftSeparator())
			}
			continue
		}
		if reader.Remaining() < 3 {
			return tokens, nil
		}
		token, err := parseToken(reader)
		if err != nil {
			err := errors.Wrap(err, "ParseStream error")
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

func parseToken(reader *sbits.Reader) (Token, error) {
	prefix, err := reader.ReadBits(3)
	if err != nil {
		return Token{}, errors.Wrap(err, "parseToken error: read token prefix")
	}
	switch prefix {
	case 0b100:
		value, err := readVarInt(reader)
		if err != nil {
			return Token{}, errors.Wrap(err, "parseToken error: read varint value")
		}
		return VarInt(value), nil
	case 0b110:
		value, width, err := reader.ReadVarBit()
		if err != nil {
			return Token{}, errors.Wrap(err, "parseToken error: read varbit value")
		}
		return VarBit(value, width), nil
	case 0b101:
		return parsePart(reader)
	case 0b111:
		return parseString(reader)
	}
	// the two-bit prefixes are handled by the caller, so three-bit
	// prefixes always start with 1
	panic(ds.ErrUnreachableCode{Caller: "parseToken"})
}

func parsePart(reader *sbits.Reader) (Token, error) {
	index, err := readVarInt(reader)
	if err != nil {
		return Token{}, errors.Wrap(err, "parsePart error: read part index")
	}
	flag, err := reader.ReadBits(1)
	if err != nil {
		return Token{}, errors.Wrap(err, "parsePart error: read value flag")
	}

	if flag == 1 {
		value, err := readVarInt(reader)
		if err != nil {
			return Token{}, errors.Wrap(err, "parsePart error: read single value")
		}
		terminator, err := reader.ReadBits(3)
		if err != nil {
			return Token{}, errors.Wrap(err, "parsePart error: read value terminator")
		}
		if terminator != 0b000 {
			return Token{}, ErrMalformedToken{
				Offset: reader.Offset() - 3,
				Detail: "single part value not terminated by 000",
			}
		}
		return SinglePart(index, value), nil
	}

	subtype, err := reader.ReadBits(2)
	if err != nil {
		return Token{}, errors.Wrap(err, "parsePart error: read subtype")
	}
	switch subtype {
	case 0b10:
		return EmptyPart(index), nil
	case 0b01:
		entries, err := parsePartEntries(reader)
		if err != nil {
			return Token{}, errors.Wrap(err, "parsePart error")
		}
		return ListPart(index, entries...), nil
	}
	return Token{}, ErrMalformedToken{
		Offset: reader.Offset() - 2,
		Detail: "unknown part subtype",
	}
}

func parsePartEntries(reader *sbits.Reader) ([]PartEntry, error) {
	entries := make([]PartEntry, 0, 4)
	for {
		prefix, err := reader.ReadBits(2)
		if err != nil {
			return nil, errors.Wrap(err, "parsePartEntries error: read entry prefix")
		}
		switch prefix {
		case 0b00:
			return entries, nil
		case 0b01:
			entries = append(entries, SoftEntry())
			continue
		}
		bit, err := reader.ReadBits(1)
		if err != nil {
			return nil, errors.Wrap(err, "parsePartEntries error: read entry prefix")
		}
		switch prefix<<1 | bit {
		case 0b100:
			value, err := readVarInt(reader)
			if err != nil {
				return nil, errors.Wrap(err, "parsePartEntries error: read varint entry")
			}
			entries = append(entries, IntEntry(value))
		case 0b110:
			value, width, err := reader.ReadVarBit()
			if err != nil {
				return nil, errors.Wrap(err, "parsePartEntries error: read varbit entry")
			}
			entries = append(entries, BitEntry(value, width))
		default:
			return nil, ErrMalformedToken{
				Offset: reader.Offset() - 3,
				Detail: "unexpected entry prefix in part list",
			}
		}
	}
}

func parseString(reader *sbits.Reader) (Token, error) {
	length, err := readVarInt(reader)
	if err != nil {
		return Token{}, errors.Wrap(err, "parseString error: read length")
	}
	chars := make([]byte, 0, length)
	for i := uint32(0); i < length; i++ {
		ch, err := reader.ReadBits(7)
		if err != nil {
			return Token{}, errors.Wrap(err, "parseString error: read character")
		}
		chars = append(chars, byte(ch))
	}
	return String(string(chars)), nil
}

// readVarInt turns a varint that keeps asking for more nibbles into a
// malformed token instead of a reader error.
func readVarInt(reader *sbits.Reader) (uint32, error) {
	value, err := reader.ReadVarInt()
	if err != nil {
		overflow := sbits.ErrVarIntOverflow{}
		if errors.As(err, &overflow) {
			return 0, ErrMalformedToken{
				Offset: overflow.Offset,
				Detail: "varint continues past 4 nibbles",
			}
		}
		return 0, err
	}
	return value, nil
}
