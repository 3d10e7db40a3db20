package sref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarityLookup(t *testing.T) {
	tier, ok := RarityByTier(1)
	assert.True(t, ok)
	assert.Equal(t, "Common", tier.Name)

	tier, ok = RarityByTier(5)
	assert.True(t, ok)
	assert.Equal(t, "Legendary", tier.Name)
	assert.Equal(t, "#FFA500", tier.Color)

	tier, ok = RarityByCode("comp_03")
	assert.True(t, ok)
	assert.Equal(t, "Rare", tier.Name)

	_, ok = RarityByTier(6)
	assert.False(t, ok)
}

func TestElementLookup(t *testing.T) {
	element, ok := ElementByCode("fire")
	assert.True(t, ok)
	assert.Equal(t, "Fire", element.Name)

	element, ok = ElementById(0)
	assert.True(t, ok)
	assert.Equal(t, "kinetic", element.Code)

	element, ok = ElementById(5)
	assert.True(t, ok)
	assert.Equal(t, "Radiation", element.Name)

	_, ok = ElementById(6)
	assert.False(t, ok)
}

func TestWeaponTypeLookup(t *testing.T) {
	weaponType, ok := WeaponTypeByCode("AR")
	assert.True(t, ok)
	assert.Equal(t, "Assault Rifle", weaponType.Name)

	weaponType, ok = WeaponTypeByCode("SR")
	assert.True(t, ok)
	assert.Equal(t, "Sniper Rifle", weaponType.Name)

	_, ok = WeaponTypeByCode("XX")
	assert.False(t, ok)
}

func TestManufacturerLookup(t *testing.T) {
	manufacturer, ok := ManufacturerByCode("JAK")
	assert.True(t, ok)
	assert.Equal(t, "Jakobs", manufacturer.Name)

	manufacturer, ok = ManufacturerByName("Maliwan")
	assert.True(t, ok)
	assert.Equal(t, "MAL", manufacturer.Code)

	_, ok = ManufacturerByCode("ZZZ")
	assert.False(t, ok)
}

func TestGearTypeLookup(t *testing.T) {
	gearType, ok := GearTypeByCode("shield")
	assert.True(t, ok)
	assert.Equal(t, "Shield", gearType.Name)

	_, ok = GearTypeByCode("hat")
	assert.False(t, ok)
}

func TestStatDescription(t *testing.T) {
	description, ok := StatDescription("Damage")
	assert.True(t, ok)
	assert.Equal(t, "Base damage", description)

	description, ok = StatDescription("MagSize")
	assert.True(t, ok)
	assert.Equal(t, "Magazine size", description)

	_, ok = StatDescription("Luck")
	assert.False(t, ok)
}

func TestLegendaryLookup(t *testing.T) {
	item, ok := LegendaryByName("Seventh Sense")
	assert.True(t, ok)
	assert.Equal(t, "JAK", item.Manufacturer)

	_, ok = LegendaryByInternal("JAK_PS.comp_05_legendary_SeventhSense")
	assert.True(t, ok)

	items := LegendariesFor("JAK", "PS")
	assert.Len(t, items, 3)

	assert.Empty(t, LegendariesFor("GRV", "AR"))
}
