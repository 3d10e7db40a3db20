package srarity

type (
	// Estimate describes how rare a decoded item is. TierProbability is
	// always set; the pool fields follow the value-plus-flag convention
	// of the item model and stay zero when the pool table has no row for
	// the category.
	Estimate struct {
		Tier               int     `json:"tier"`
		TierProbability    float64 `json:"tier_probability"`
		WorldPoolSize      uint32  `json:"world_pool_size,omitempty"`
		WorldPoolKnown     bool    `json:"world_pool_known,omitempty"`
		PerItemProbability float64 `json:"per_item_probability,omitempty"`
		DedicatedSources   uint32  `json:"dedicated_sources,omitempty"`
		SourcesKnown       bool    `json:"sources_known,omitempty"`
		OneIn              uint64  `json:"one_in"`
		Category           string  `json:"category,omitempty"`
	}
	// PoolEntry is the drop pool data of one category: how many distinct
	// legendaries share its world drop pool, and how many dedicated
	// sources feed it.
	PoolEntry struct {
		WorldPoolSize    uint32 `json:"world_pool_size"`
		DedicatedSources uint32 `json:"dedicated_sources"`
	}
	// PoolTable answers drop pool lookups by category. It is loaded once
	// and passed around immutable, the estimator only reads it.
	PoolTable interface {
		PoolFor(category uint32) (PoolEntry, bool)
	}
	MapPoolTable map[uint32]PoolEntry
)

// LegendaryTier is the only tier whose estimate narrows to a single
// pool slot; lower tiers drop too often for pool math to matter.
const LegendaryTier = 5

func (t MapPoolTable) PoolFor(category uint32) (PoolEntry, bool) {
	entry, ok := t[category]
	return entry, ok
}
