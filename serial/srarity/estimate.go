package srarity

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/sref"
)

// DetectTier scans part names for rarity tier codes and picks the
// highest tier mentioned. Matching is case-insensitive since catalog
// names mix cases freely.
func DetectTier(names []string) (sref.RarityTier, bool) {
	best := sref.RarityTier{}
	found := false
	lo.ForEach(names, func(name string, _ int) {
		lowered := strings.ToLower(name)
		lo.ForEach(sref.RarityTiers, func(tier sref.RarityTier, _ int) {
			if strings.Contains(lowered, tier.Code) && tier.Tier > best.Tier {
				best = tier
				found = true
			}
		})
	})
	return best, found
}

// TierProbability is the chance that a drop rolls the tier at all: its
// weight over the total weight of the tier table.
func TierProbability(tier sref.RarityTier) float64 {
	total := lo.SumBy(sref.RarityTiers, func(t sref.RarityTier) float64 {
		return t.Weight
	})
	return tier.Weight / total
}

// Compute turns a detected tier into a full estimate. A legendary
// estimate narrows to one slot of the category's world drop pool when
// the table knows its size; every other tier keeps the plain tier
// probability. OneIn always uses the most specific probability
// available.
func Compute(tier sref.RarityTier, category uint32, categoryKnown bool, pools PoolTable) Estimate {
	if pools == nil {
		pools = MapPoolTable{}
	}
	estimate := Estimate{
		Tier:            tier.Tier,
		TierProbability: TierProbability(tier),
	}
	if categoryKnown {
		if name, ok := spart.CategoryName(category); ok {
			estimate.Category = name
		}
		if pool, ok := pools.PoolFor(category); ok {
			estimate.DedicatedSources = pool.DedicatedSources
			estimate.SourcesKnown = true
			if tier.Tier == LegendaryTier && pool.WorldPoolSize > 0 {
				estimate.WorldPoolSize = pool.WorldPoolSize
				estimate.WorldPoolKnown = true
				estimate.PerItemProbability = estimate.TierProbability / float64(pool.WorldPoolSize)
			}
		}
	}
	effective := estimate.TierProbability
	if estimate.WorldPoolKnown {
		effective = estimate.PerItemProbability
	}
	if effective > 0 {
		estimate.OneIn = uint64(math.Round(1 / effective))
	}
	return estimate
}

// OddsDisplay renders the estimate the way a player would say it.
func (e Estimate) OddsDisplay() string {
	if e.OneIn <= 1 {
		return "~100%"
	}
	return "~1 in " + groupDigits(e.OneIn)
}

// groupDigits writes n with a comma every three digits.
func groupDigits(n uint64) string {
	digits := strconv.FormatUint(n, 10)
	lead := len(digits) % 3
	groups := []string{}
	if lead > 0 {
		groups = append(groups, digits[:lead])
	}
	groups = append(groups, lo.Map(
		ds.MakeChunks([]byte(digits[lead:]), 3),
		func(chunk []byte, _ int) string {
			return string(chunk)
		},
	)...)
	return strings.Join(groups, ",")
}
