package serial

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokrome/bl4-sub000/serial/stoken"
)

func TestDiffIdentical(t *testing.T) {
	model, err := Decode(serialMaliwanSMG)
	require.NoError(t, err)
	diffs, err := Diff(model, model)
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

func TestDiffSameLength(t *testing.T) {
	a, err := Decode(serialEnergyShield)
	require.NoError(t, err)
	b, err := Decode(serialShieldVariant)
	require.NoError(t, err)

	diffs, err := Diff(a, b)
	require.NoError(t, err)
	positions := lo.Map(diffs, func(diff TokenDiff, _ int) int {
		return diff.Position
	})
	assert.Equal(t, []int{0, 2, 7, 10, 11, 12}, positions)

	// A value mismatch keeps both sides.
	require.NotNil(t, diffs[0].A)
	require.NotNil(t, diffs[0].B)
	assert.Equal(t, uint32(107200), diffs[0].A.Value)
	assert.Equal(t, uint32(111296), diffs[0].B.Value)
	assert.Equal(t, uint32(50), diffs[1].A.Value)
	assert.Equal(t, uint32(49), diffs[1].B.Value)
}

func TestDiffLengthOverhang(t *testing.T) {
	a, err := Decode(serialMaliwanSMG)
	require.NoError(t, err)
	b, err := Decode(serialJakobsPistol)
	require.NoError(t, err)

	diffs, err := Diff(a, b)
	require.NoError(t, err)
	require.Len(t, diffs, 12)

	// The longer stream overhangs by one trailing separator, reported
	// with the missing side nil.
	last := diffs[len(diffs)-1]
	assert.Equal(t, 25, last.Position)
	require.NotNil(t, last.A)
	assert.Nil(t, last.B)
	assert.Equal(t, stoken.KindSeparator, last.A.Kind)
}

func TestDiffIncompatibleLayout(t *testing.T) {
	weapon, err := Decode(serialMaliwanSMG)
	require.NoError(t, err)
	equipment, err := Decode(serialEnergyShield)
	require.NoError(t, err)

	_, err = Diff(weapon, equipment)
	expected := ErrIncompatibleLayout{}
	require.ErrorAs(t, err, &expected)
	assert.Equal(t, LayoutWeapon, expected.A)
	assert.Equal(t, LayoutEquipment, expected.B)
}
