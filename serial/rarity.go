package serial

import (
	"github.com/samber/lo"

	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/srarity"
)

// RarityEstimate detects the model's rarity tier from its resolved part
// names and estimates the drop odds against pools. ok is false when no
// resolved part carries a tier code, which also covers models decoded
// without a catalog. The model is never mutated.
func RarityEstimate(model *ItemModel, pools srarity.PoolTable) (srarity.Estimate, bool) {
	names := lo.FilterMap(model.Parts, func(part spart.ResolvedPart, _ int) (string, bool) {
		return part.Name, part.Resolved
	})
	tier, found := srarity.DetectTier(names)
	if !found {
		return srarity.Estimate{}, false
	}
	return srarity.Compute(tier, model.Category, model.CategoryResolved, pools), true
}
