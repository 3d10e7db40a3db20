package srarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokrome/bl4-sub000/serial/sref"
)

func TestDetectTier(t *testing.T) {
	_, found := DetectTier(nil)
	assert.False(t, found)

	_, found = DetectTier([]string{"barrel_b", "grip_standard"})
	assert.False(t, found)

	tier, found := DetectTier([]string{"DAD_SG.comp_05_legendary_HeartGUn"})
	require.True(t, found)
	assert.Equal(t, 5, tier.Tier)

	// The highest tier wins regardless of order.
	tier, found = DetectTier([]string{"stock_comp_04_a", "mag_comp_02_b"})
	require.True(t, found)
	assert.Equal(t, 4, tier.Tier)

	tier, found = DetectTier([]string{"JAK_PS.COMP_03_Rare"})
	require.True(t, found)
	assert.Equal(t, 3, tier.Tier)
}

func TestTierProbability(t *testing.T) {
	legendary, ok := sref.RarityByTier(5)
	require.True(t, ok)
	assert.InDelta(t, 0.0003/106.1853, TierProbability(legendary), 1e-15)

	common, ok := sref.RarityByTier(1)
	require.True(t, ok)
	assert.InDelta(t, 100.0/106.1853, TierProbability(common), 1e-15)
}

func TestCompute(t *testing.T) {
	pools := MapPoolTable{
		23: {WorldPoolSize: 12, DedicatedSources: 3},
	}
	legendary, ok := sref.RarityByTier(5)
	require.True(t, ok)

	// Pooled legendary: odds narrow to one slot of the world pool.
	estimate := Compute(legendary, 23, true, pools)
	assert.Equal(t, 5, estimate.Tier)
	assert.Equal(t, "Maliwan SMG", estimate.Category)
	assert.True(t, estimate.WorldPoolKnown)
	assert.Equal(t, uint32(12), estimate.WorldPoolSize)
	assert.True(t, estimate.SourcesKnown)
	assert.Equal(t, uint32(3), estimate.DedicatedSources)
	assert.Equal(t, uint64(4247412), estimate.OneIn)

	// No pool row: plain tier odds.
	estimate = Compute(legendary, 26, true, pools)
	assert.Equal(t, "Jakobs Sniper", estimate.Category)
	assert.False(t, estimate.WorldPoolKnown)
	assert.False(t, estimate.SourcesKnown)
	assert.Equal(t, uint64(353951), estimate.OneIn)

	// Unresolved category: no name, no pool, still an estimate.
	estimate = Compute(legendary, 0, false, pools)
	assert.Equal(t, "", estimate.Category)
	assert.Equal(t, uint64(353951), estimate.OneIn)

	// Pool rows refine legendaries only; other tiers keep tier odds but
	// still report the dedicated sources.
	rare, ok := sref.RarityByTier(3)
	require.True(t, ok)
	estimate = Compute(rare, 23, true, pools)
	assert.False(t, estimate.WorldPoolKnown)
	assert.True(t, estimate.SourcesKnown)
	assert.Equal(t, uint32(3), estimate.DedicatedSources)
	assert.Equal(t, uint64(758), estimate.OneIn)

	epic, ok := sref.RarityByTier(4)
	require.True(t, ok)
	assert.Equal(t, uint64(2360), Compute(epic, 0, false, nil).OneIn)

	uncommon, ok := sref.RarityByTier(2)
	require.True(t, ok)
	assert.Equal(t, uint64(18), Compute(uncommon, 0, false, nil).OneIn)

	common, ok := sref.RarityByTier(1)
	require.True(t, ok)
	assert.Equal(t, uint64(1), Compute(common, 0, false, nil).OneIn)
}

func TestOddsDisplay(t *testing.T) {
	assert.Equal(t, "~100%", Estimate{OneIn: 0}.OddsDisplay())
	assert.Equal(t, "~100%", Estimate{OneIn: 1}.OddsDisplay())
	assert.Equal(t, "~1 in 18", Estimate{OneIn: 18}.OddsDisplay())
	assert.Equal(t, "~1 in 2,360", Estimate{OneIn: 2360}.OddsDisplay())
	assert.Equal(t, "~1 in 353,951", Estimate{OneIn: 353951}.OddsDisplay())
	assert.Equal(t, "~1 in 4,247,412", Estimate{OneIn: 4247412}.OddsDisplay())
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1", groupDigits(1))
	assert.Equal(t, "100", groupDigits(100))
	assert.Equal(t, "1,000", groupDigits(1000))
	assert.Equal(t, "353,490", groupDigits(353490))
	assert.Equal(t, "1,000,000", groupDigits(1000000))
}
