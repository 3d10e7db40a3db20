package serial

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial/stoken"
)

// Modify grafts part tokens of source onto base at the given token
// positions and returns a freshly decoded model of the result. Both
// models must share layout and resolved category, and every position
// must hold a part token on both sides. Nothing is returned on error,
// base is never touched.
func Modify(base *ItemModel, source *ItemModel, positions []int) (*ItemModel, error) {
	if base.Layout != source.Layout {
		return nil, ErrIncompatibleLayout{A: base.Layout, B: source.Layout}
	}
	if !base.CategoryResolved || !source.CategoryResolved || base.Category != source.Category {
		return nil, ErrIncompatibleCategory{A: base.Category, B: source.Category}
	}
	tokens := ds.ShallowCopy(base.Tokens)
	for _, position := range positions {
		if position < 0 || position >= len(base.Tokens) || position >= len(source.Tokens) {
			return nil, errors.New(fmt.Sprintf("Modify error: position %d outside both token streams", position))
		}
		if base.Tokens[position].Kind != stoken.KindPart ||
			source.Tokens[position].Kind != stoken.KindPart {
			return nil, errors.New(fmt.Sprintf("Modify error: position %d does not hold part tokens", position))
		}
		tokens[position] = source.Tokens[position]
	}
	result, err := DecodeWithCatalog(encodeTokens(tokens), base.catalog)
	if err != nil {
		return nil, errors.Wrap(err, "Modify error: decoding rebuilt serial")
	}
	return result, nil
}
