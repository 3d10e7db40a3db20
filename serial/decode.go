package serial

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/monokrome/bl4-sub000/serial/sbase85"
	"github.com/monokrome/bl4-sub000/serial/sbits"
	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/stoken"
)

// Decode turns a serial string into an ItemModel using only the
// built-in wire tables. Part names stay unresolved.
func Decode(raw string) (*ItemModel, error) {
	return DecodeWithCatalog(raw, spart.MapCatalog{})
}

// DecodeWithCatalog turns a serial string into an ItemModel, resolving
// part names against catalog. The layout follows the first token of
// the stream: a varint opens a weapon, a varbit opens equipment.
func DecodeWithCatalog(raw string, catalog spart.Catalog) (*ItemModel, error) {
	if catalog == nil {
		catalog = spart.MapCatalog{}
	}
	if len(raw) < len(PrefixMarker) || raw[:len(PrefixMarker)] != PrefixMarker {
		return nil, ErrInvalidPrefix{Found: raw}
	}
	payload, err := sbase85.Decode(raw[len(PrefixMarker):])
	if err != nil {
		return nil, errors.Wrap(err, "DecodeWithCatalog error: decoding payload text")
	}
	data := sbase85.MirrorBytes(payload)
	reader := sbits.NewReader(data)
	magic, err := reader.ReadBits(MagicBits)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeWithCatalog error: reading magic header")
	}
	if magic != Magic {
		return nil, ErrBadMagic{Got: magic}
	}
	tokens, err := stoken.ParseStream(reader)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeWithCatalog error: parsing token stream")
	}
	if len(tokens) == 0 {
		return nil, ErrUnknownLayout{}
	}
	model := &ItemModel{
		Raw:     raw,
		Tokens:  tokens,
		bytes:   data,
		catalog: catalog,
	}
	switch tokens[0].Kind {
	case stoken.KindVarInt:
		model.Layout = LayoutWeapon
		populateWeapon(model)
	case stoken.KindVarBit:
		model.Layout = LayoutEquipment
		populateEquipment(model)
	default:
		return nil, ErrUnknownLayout{Kind: tokens[0].Kind}
	}
	resolveParts(model)
	return model, nil
}

// populateWeapon reads the weapon header: varints up to the first
// separator carry the wire id first and the level code fourth. The
// category comes from the wire id.
func populateWeapon(model *ItemModel) {
	header := headerVarInts(model.Tokens)
	if len(header) >= 1 {
		model.WireId = header[0]
		model.WireIdKnown = true
		if category, ok := model.catalog.CategoryFor(header[0]); ok {
			model.Category = category
			model.CategoryResolved = true
		}
	}
	if len(header) >= 4 {
		model.LevelRaw = header[3]
		model.Level, model.LevelOutOfRange = weaponLevel(header[3])
		model.LevelKnown = true
	}
	model.Seed, model.SeedKnown = scanSeed(model.Tokens)
}

// populateEquipment reads the equipment header: the opening varbit
// scaled down by the type divisor gives the category, the first varbit
// after the first separator carries the level.
func populateEquipment(model *ItemModel) {
	model.CategoryRaw = model.Tokens[0].Value
	if divisor, ok := spart.CategoryDivisor(model.TypeDiscriminant()); ok {
		model.Category = model.CategoryRaw / divisor
		model.CategoryResolved = true
	}
	if raw, ok := firstVarBitAfterSeparator(model.Tokens); ok {
		model.LevelRaw = raw
		model.Level, model.LevelOutOfRange = equipmentLevel(raw)
		model.LevelKnown = true
	}
	model.Seed, model.SeedKnown = scanSeed(model.Tokens)
}

// resolveParts classifies every part token. Element markers land in
// Elements, everything else is looked up in the catalog and kept even
// when the lookup misses.
func resolveParts(model *ItemModel) {
	for _, token := range model.Tokens {
		if token.Kind != stoken.KindPart {
			continue
		}
		part := spart.Resolve(model.catalog, model.Category, token.Index)
		if part.Ref.IsElement {
			model.Elements = append(model.Elements, part.Ref.ElementId)
			continue
		}
		model.Parts = append(model.Parts, part)
	}
}

func headerVarInts(tokens []stoken.Token) []uint32 {
	header := []uint32{}
	for _, token := range tokens {
		if token.Kind == stoken.KindSeparator {
			break
		}
		if token.Kind == stoken.KindVarInt {
			header = append(header, token.Value)
		}
	}
	return header
}

// scanSeed finds the second varint after the first separator. Both
// layouts keep the seed there.
func scanSeed(tokens []stoken.Token) (uint32, bool) {
	rest, found := afterFirstSeparator(tokens)
	if !found {
		return 0, false
	}
	count := 0
	for _, token := range rest {
		if token.Kind != stoken.KindVarInt {
			continue
		}
		count += 1
		if count == 2 {
			return token.Value, true
		}
	}
	return 0, false
}

func firstVarBitAfterSeparator(tokens []stoken.Token) (uint32, bool) {
	rest, found := afterFirstSeparator(tokens)
	if !found {
		return 0, false
	}
	token, found := lo.Find(rest, func(token stoken.Token) bool {
		return token.Kind == stoken.KindVarBit
	})
	if !found {
		return 0, false
	}
	return token.Value, true
}

func afterFirstSeparator(tokens []stoken.Token) ([]stoken.Token, bool) {
	_, index, found := lo.FindIndexOf(tokens, func(token stoken.Token) bool {
		return token.Kind == stoken.KindSeparator
	})
	if !found {
		return nil, false
	}
	return tokens[index+1:], true
}
