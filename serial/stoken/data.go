package stoken

import (
	"fmt"
)

type (
	Kind          string
	PartValueKind string
	// Token is one element of the decoded bitstream. Value and Width
	// carry numeric payloads, Index and Entries belong to part tokens,
	// and Str belongs to string tokens.
	Token struct {
		Kind      Kind          `json:"kind"`
		Value     uint32        `json:"value,omitempty"`
		Width     int           `json:"width,omitempty"`
		Index     uint32        `json:"index,omitempty"`
		ValueKind PartValueKind `json:"value_kind,omitempty"`
		Entries   []PartEntry   `json:"entries,omitempty"`
		Str       string        `json:"str,omitempty"`
	}
	// PartEntry is one element of a part's value list. Lists carry
	// soft separators and numbers of either encoding, and all of them
	// have to survive a decode/encode round trip bit for bit.
	PartEntry struct {
		Kind  Kind   `json:"kind"`
		Value uint32 `json:"value,omitempty"`
		Width int    `json:"width,omitempty"`
	}
	ErrMalformedToken struct {
		Offset int
		Detail string
	}
)

const (
	KindSeparator     = Kind("separator")
	KindSoftSeparator = Kind("soft_separator")
	KindVarInt        = Kind("varint")
	KindVarBit        = Kind("varbit")
	KindPart          = Kind("part")
	KindString        = Kind("string")

	PartValueNone   = PartValueKind("none")
	PartValueSingle = PartValueKind("single")
	PartValueList   = PartValueKind("list")
)

func (r ErrMalformedToken) Error() string {
	return fmt.Sprintf(
		`malformed token at bit offset %d: %s`,
		r.Offset, r.Detail,
	)
}

func Separator() Token {
	return Token{Kind: KindSeparator}
}

func SoftSeparator() Token {
	return Token{Kind: KindSoftSeparator}
}

func VarInt(value uint32) Token {
	return Token{Kind: KindVarInt, Value: value}
}

func VarBit(value uint32, width int) Token {
	return Token{Kind: KindVarBit, Value: value, Width: width}
}

func EmptyPart(index uint32) Token {
	return Token{Kind: KindPart, Index: index, ValueKind: PartValueNone}
}

func SinglePart(index uint32, value uint32) Token {
	return Token{Kind: KindPart, Index: index, ValueKind: PartValueSingle, Value: value}
}

func ListPart(index uint32, entries ...PartEntry) Token {
	return Token{Kind: KindPart, Index: index, ValueKind: PartValueList, Entries: entries}
}

func String(s string) Token {
	return Token{Kind: KindString, Str: s}
}

func SoftEntry() PartEntry {
	return PartEntry{Kind: KindSoftSeparator}
}

func IntEntry(value uint32) PartEntry {
	return PartEntry{Kind: KindVarInt, Value: value}
}

func BitEntry(value uint32, width int) PartEntry {
	return PartEntry{Kind: KindVarBit, Value: value, Width: width}
}
