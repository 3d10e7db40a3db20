package serial

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/sref"
	"github.com/monokrome/bl4-sub000/serial/stoken"
)

// TypeDiscriminant returns the character that tells item families
// apart. It is the second payload character of the serial text, read
// on demand and never stored.
func (model *ItemModel) TypeDiscriminant() byte {
	if len(model.Raw) < 4 {
		return 0
	}
	return model.Raw[3]
}

// TypeDescription names the item family of the type discriminant.
func (model *ItemModel) TypeDescription() string {
	return spart.ItemTypeName(model.TypeDiscriminant())
}

// FormatTokens renders the token stream as one line of text.
func (model *ItemModel) FormatTokens() string {
	return stoken.Render(model.Tokens)
}

// HexDump returns the mirrored payload bytes as lowercase hex text.
func (model *ItemModel) HexDump() string {
	return hex.EncodeToString(model.bytes)
}

// WeaponInfo returns manufacturer and weapon type for weapon layouts
// with a known wire id.
func (model *ItemModel) WeaponInfo() (spart.WeaponInfo, bool) {
	if model.Layout != LayoutWeapon || !model.WireIdKnown {
		return spart.WeaponInfo{}, false
	}
	return spart.WeaponInfoFor(model.WireId)
}

// CategoryName names the resolved category, when there is one.
func (model *ItemModel) CategoryName() (string, bool) {
	if !model.CategoryResolved {
		return "", false
	}
	return spart.CategoryName(model.Category)
}

// CategoryResidual is the remainder the category division leaves
// behind on equipment layouts. What the remainder encodes is unknown,
// so it is surfaced as-is instead of interpreted.
func (model *ItemModel) CategoryResidual() (uint32, bool) {
	if model.Layout != LayoutEquipment || !model.CategoryResolved {
		return 0, false
	}
	divisor, ok := spart.CategoryDivisor(model.TypeDiscriminant())
	if !ok {
		return 0, false
	}
	return model.CategoryRaw % divisor, true
}

// ElementTypes maps the element markers of the stream to reference
// entries, skipping ids without one.
func (model *ItemModel) ElementTypes() []sref.ElementType {
	return lo.FilterMap(model.Elements, func(id uint32, _ int) (sref.ElementType, bool) {
		return sref.ElementById(id)
	})
}

// WithTokens builds a fresh model from tokens, keeping the catalog of
// the receiver. The stream is encoded and decoded from scratch so the
// derived fields and the raw text stay consistent with each other.
func (model *ItemModel) WithTokens(tokens []stoken.Token) (*ItemModel, error) {
	next, err := DecodeWithCatalog(encodeTokens(tokens), model.catalog)
	if err != nil {
		return nil, errors.Wrap(err, "WithTokens error: decoding rebuilt serial")
	}
	return next, nil
}
