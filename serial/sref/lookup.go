package sref

import (
	"github.com/samber/lo"
)

func RarityByTier(tier int) (RarityTier, bool) {
	return lo.Find(
		RarityTiers,
		func(r RarityTier) bool {
			return r.Tier == tier
		},
	)
}

func RarityByCode(code string) (RarityTier, bool) {
	return lo.Find(
		RarityTiers,
		func(r RarityTier) bool {
			return r.Code == code
		},
	)
}

// ElementById looks an element up by the id an element marker carries.
func ElementById(id uint32) (ElementType, bool) {
	if int(id) >= len(ElementTypes) {
		return ElementType{}, false
	}
	return ElementTypes[id], true
}

func ElementByCode(code string) (ElementType, bool) {
	return lo.Find(
		ElementTypes,
		func(e ElementType) bool {
			return e.Code == code
		},
	)
}

func WeaponTypeByCode(code string) (WeaponType, bool) {
	return lo.Find(
		WeaponTypes,
		func(w WeaponType) bool {
			return w.Code == code
		},
	)
}

func ManufacturerByCode(code string) (Manufacturer, bool) {
	return lo.Find(
		Manufacturers,
		func(m Manufacturer) bool {
			return m.Code == code
		},
	)
}

// ManufacturerByName finds a manufacturer by its display name.
func ManufacturerByName(name string) (Manufacturer, bool) {
	return lo.Find(
		Manufacturers,
		func(m Manufacturer) bool {
			return m.Name == name
		},
	)
}

func GearTypeByCode(code string) (GearType, bool) {
	return lo.Find(
		GearTypes,
		func(g GearType) bool {
			return g.Code == code
		},
	)
}

func StatDescription(stat string) (string, bool) {
	description, ok := statDescriptions[stat]
	return description, ok
}

func LegendaryByInternal(internal string) (LegendaryItem, bool) {
	return lo.Find(
		KnownLegendaries,
		func(l LegendaryItem) bool {
			return l.Internal == internal
		},
	)
}

func LegendaryByName(name string) (LegendaryItem, bool) {
	return lo.Find(
		KnownLegendaries,
		func(l LegendaryItem) bool {
			return l.Name == name
		},
	)
}

// LegendariesFor lists the known legendaries for a manufacturer and
// weapon type code pair.
func LegendariesFor(manufacturer string, weaponType string) []LegendaryItem {
	return lo.Filter(
		KnownLegendaries,
		func(l LegendaryItem, _ int) bool {
			return l.Manufacturer == manufacturer && l.WeaponType == weaponType
		},
	)
}
