// Package serial decodes and encodes item serial strings. A serial is
// a "@U" marker followed by text in an 85-symbol alphabet; underneath
// sit mirrored bytes holding a 7-bit magic header and a token stream.
// Decoding is strict about structure and lossless about content: the
// decoded model keeps everything needed to reproduce the input bit for
// bit.
package serial

import (
	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/stoken"
)

type (
	LayoutKind string
	// ItemModel is the decoded form of one serial. Raw keeps the exact
	// input text. Field extraction is best-effort: a field the stream
	// does not carry stays at its zero value with its Known flag
	// cleared, only structural failures abort a decode.
	ItemModel struct {
		Raw    string         `json:"raw"`
		Layout LayoutKind     `json:"layout"`
		Tokens []stoken.Token `json:"tokens"`

		Category         uint32 `json:"category,omitempty"`
		CategoryResolved bool   `json:"category_resolved,omitempty"`
		CategoryRaw      uint32 `json:"category_raw,omitempty"`
		WireId           uint32 `json:"wire_id,omitempty"`
		WireIdKnown      bool   `json:"wire_id_known,omitempty"`
		LevelRaw         uint32 `json:"level_raw,omitempty"`
		Level            uint32 `json:"level,omitempty"`
		LevelKnown       bool   `json:"level_known,omitempty"`
		LevelOutOfRange  bool   `json:"level_out_of_range,omitempty"`
		Seed             uint32 `json:"seed,omitempty"`
		SeedKnown        bool   `json:"seed_known,omitempty"`

		Parts    []spart.ResolvedPart `json:"parts,omitempty"`
		Elements []uint32             `json:"elements,omitempty"`

		bytes   []byte
		catalog spart.Catalog
	}
	// BatchResult is one slot of a batch decode. Exactly one of Model
	// and Err is set.
	BatchResult struct {
		Model *ItemModel `json:"model,omitempty"`
		Err   error      `json:"-"`
	}
	// TokenDiff reports one position where two token streams disagree.
	// A nil side means that stream has no token at the position.
	TokenDiff struct {
		Position int           `json:"position"`
		A        *stoken.Token `json:"a,omitempty"`
		B        *stoken.Token `json:"b,omitempty"`
	}
)

const (
	LayoutWeapon    = LayoutKind("weapon")
	LayoutEquipment = LayoutKind("equipment")

	// PrefixMarker opens every serial. The byte after it is payload,
	// not part of the marker.
	PrefixMarker = "@U"
	// Magic is the 7-bit header every payload starts with.
	Magic     = 0b0010000
	MagicBits = 7
)
