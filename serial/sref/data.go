// Package sref holds static reference data about the game concepts a
// decoded item surfaces: rarities, elements, weapon types,
// manufacturers, and gear classes. Everything here is display data,
// nothing feeds back into the wire format.
package sref

type (
	RarityTier struct {
		Tier  int    `json:"tier"`
		Code  string `json:"code"`
		Name  string `json:"name"`
		Color string `json:"color"`
		// Weight is the tier's relative drop weight from the game's
		// rarity balance table. Higher means more common.
		Weight float64 `json:"weight"`
	}
	ElementType struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	WeaponType struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	Manufacturer struct {
		Code        string   `json:"code"`
		Name        string   `json:"name"`
		WeaponTypes []string `json:"weapon_types"`
		Style       string   `json:"style"`
	}
	GearType struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	LegendaryItem struct {
		Internal     string `json:"internal"`
		Name         string `json:"name"`
		WeaponType   string `json:"weapon_type"`
		Manufacturer string `json:"manufacturer"`
	}
)

var RarityTiers = []RarityTier{
	{Tier: 1, Code: "comp_01", Name: "Common", Color: "#FFFFFF", Weight: 100.0},
	{Tier: 2, Code: "comp_02", Name: "Uncommon", Color: "#00FF00", Weight: 6.0},
	{Tier: 3, Code: "comp_03", Name: "Rare", Color: "#0080FF", Weight: 0.14},
	{Tier: 4, Code: "comp_04", Name: "Epic", Color: "#A020F0", Weight: 0.045},
	{Tier: 5, Code: "comp_05", Name: "Legendary", Color: "#FFA500", Weight: 0.0003},
}

// ElementTypes is ordered by element id, the value an element marker
// carries in a part token.
var ElementTypes = []ElementType{
	{Code: "kinetic", Name: "Impact", Description: "Non-elemental kinetic damage", Color: "#808080"},
	{Code: "fire", Name: "Fire", Description: "Incendiary damage, effective vs flesh", Color: "#FF4500"},
	{Code: "shock", Name: "Electric", Description: "Shock damage, effective vs shields", Color: "#00BFFF"},
	{Code: "corrosive", Name: "Corrosive", Description: "Acid damage, effective vs armor", Color: "#32CD32"},
	{Code: "cryo", Name: "Cryo", Description: "Freezing damage, slows and can freeze enemies", Color: "#ADD8E6"},
	{Code: "radiation", Name: "Radiation", Description: "Radiation damage, spreads to nearby enemies", Color: "#FFFF00"},
}

var WeaponTypes = []WeaponType{
	{Code: "AR", Name: "Assault Rifle", Description: "Full-auto/burst fire rifles"},
	{Code: "HW", Name: "Heavy Weapon", Description: "Launchers and miniguns"},
	{Code: "PS", Name: "Pistol", Description: "Semi-auto and full-auto handguns"},
	{Code: "SG", Name: "Shotgun", Description: "High-damage spread weapons"},
	{Code: "SM", Name: "SMG", Description: "Submachine guns"},
	{Code: "SR", Name: "Sniper Rifle", Description: "Long-range precision weapons"},
}

var Manufacturers = []Manufacturer{
	{Code: "BOR", Name: "Borg", WeaponTypes: []string{"SM", "SG", "HW", "SR"}, Style: "Cult/organic aesthetics"},
	{Code: "DAD", Name: "Daedalus", WeaponTypes: []string{"AR", "SM", "PS", "SG"}, Style: "High-tech precision"},
	{Code: "JAK", Name: "Jakobs", WeaponTypes: []string{"AR", "PS", "SG", "SR"}, Style: "Old West, semi-auto, high damage per shot"},
	{Code: "MAL", Name: "Maliwan", WeaponTypes: []string{"SM", "SG", "SR", "HW"}, Style: "Elemental weapons, energy-based"},
	{Code: "ORD", Name: "Order", WeaponTypes: []string{"AR", "PS", "SR"}, Style: "Military precision"},
	{Code: "RIP", Name: "Ripper", WeaponTypes: []string{"SG", "SR"}, Style: "Aggressive, high-damage"},
	{Code: "TED", Name: "Tediore", WeaponTypes: []string{"AR", "PS", "SG", "SM"}, Style: "Disposable, thrown on reload"},
	{Code: "TOR", Name: "Torgue", WeaponTypes: []string{"AR", "PS", "SG", "HW"}, Style: "Explosive/gyrojet rounds"},
	{Code: "VLA", Name: "Vladof", WeaponTypes: []string{"AR", "SM", "SR", "HW"}, Style: "High fire rate, large magazines"},
	{Code: "GRV", Name: "Gravitar", WeaponTypes: []string{}, Style: "Class mods manufacturer"},
}

var GearTypes = []GearType{
	{Code: "shield", Name: "Shield", Description: "Defensive equipment"},
	{Code: "classmod", Name: "Class Mod", Description: "Character class modifications"},
	{Code: "enhancement", Name: "Enhancement", Description: "Permanent character upgrades"},
	{Code: "gadget", Name: "Gadget", Description: "Deployable equipment"},
	{Code: "repair_kit", Name: "Repair Kit", Description: "Healing items"},
	{Code: "grenade", Name: "Grenade", Description: "Throwable explosive devices"},
}

var KnownLegendaries = []LegendaryItem{
	{Internal: "DAD_AR.comp_05_legendary_OM", Name: "OM", WeaponType: "AR", Manufacturer: "DAD"},
	{Internal: "DAD_AR_Lumberjack", Name: "Lumberjack", WeaponType: "AR", Manufacturer: "DAD"},
	{Internal: "DAD_SG.comp_05_legendary_HeartGUn", Name: "Heart Gun", WeaponType: "SG", Manufacturer: "DAD"},
	{Internal: "DAD_PS.Zipper", Name: "Zipper", WeaponType: "PS", Manufacturer: "DAD"},
	{Internal: "DAD_PS.Rangefinder", Name: "Rangefinder", WeaponType: "PS", Manufacturer: "DAD"},
	{Internal: "DAD_SG.Durendal", Name: "Durendal", WeaponType: "SG", Manufacturer: "DAD"},
	{Internal: "JAK_AR.comp_05_legendary_rowan", Name: "Rowan's Call", WeaponType: "AR", Manufacturer: "JAK"},
	{Internal: "JAK_PS.comp_05_legendary_SeventhSense", Name: "Seventh Sense", WeaponType: "PS", Manufacturer: "JAK"},
	{Internal: "JAK_PS.comp_05_legendary_kingsgambit", Name: "King's Gambit", WeaponType: "PS", Manufacturer: "JAK"},
	{Internal: "JAK_PS.comp_05_legendary_phantom_flame", Name: "Phantom Flame", WeaponType: "PS", Manufacturer: "JAK"},
	{Internal: "JAK_SG.comp_05_legendary_RainbowVomit", Name: "Rainbow Vomit", WeaponType: "SG", Manufacturer: "JAK"},
	{Internal: "JAK_SR.comp_05_legendary_ballista", Name: "Ballista", WeaponType: "SR", Manufacturer: "JAK"},
	{Internal: "MAL_HW.comp_05_legendary_GammaVoid", Name: "Gamma Void", WeaponType: "HW", Manufacturer: "MAL"},
	{Internal: "MAL_SM.comp_05_legendary_OhmIGot", Name: "Ohm I Got", WeaponType: "SM", Manufacturer: "MAL"},
	{Internal: "BOR_SM.comp_05_legendary_p", Name: "Unknown Borg SMG", WeaponType: "SM", Manufacturer: "BOR"},
	{Internal: "TED_AR.comp_05_legendary_Chuck", Name: "Chuck", WeaponType: "AR", Manufacturer: "TED"},
	{Internal: "TED_PS.comp_05_legendary_Sideshow", Name: "Sideshow", WeaponType: "PS", Manufacturer: "TED"},
	{Internal: "TED_SG.comp_05_legendary_a", Name: "Unknown Tediore Shotgun", WeaponType: "SG", Manufacturer: "TED"},
	{Internal: "TOR_AR.comp_05_legendary_Trogdor", Name: "Trogdor", WeaponType: "AR", Manufacturer: "TOR"},
	{Internal: "TOR_HW.comp_05_legendary_ravenfire", Name: "Ravenfire", WeaponType: "HW", Manufacturer: "TOR"},
	{Internal: "TOR_SG.comp_05_legendary_Linebacker", Name: "Linebacker", WeaponType: "SG", Manufacturer: "TOR"},
	{Internal: "VLA_AR.comp_05_legendary_WomboCombo", Name: "Wombo Combo", WeaponType: "AR", Manufacturer: "VLA"},
	{Internal: "VLA_HW.comp_05_legendary_AtlingGun", Name: "Atling Gun", WeaponType: "HW", Manufacturer: "VLA"},
	{Internal: "VLA_SM.comp_05_legendary_KaoSon", Name: "Kaoson", WeaponType: "SM", Manufacturer: "VLA"},
	{Internal: "VLA_SR.comp_05_legendary_Vyudazy", Name: "Vyudazy", WeaponType: "SR", Manufacturer: "VLA"},
}

var statDescriptions = map[string]string{
	"Damage":             "Base damage",
	"CritDamage":         "Critical hit damage",
	"FireRate":           "Firing rate",
	"ReloadTime":         "Reload time",
	"MagSize":            "Magazine size",
	"Accuracy":           "Base accuracy",
	"AccImpulse":         "Accuracy impulse (recoil recovery)",
	"AccRegen":           "Accuracy regeneration",
	"AccDelay":           "Accuracy delay",
	"Spread":             "Projectile spread",
	"Recoil":             "Weapon recoil",
	"Sway":               "Weapon sway",
	"ProjectilesPerShot": "Pellets per shot",
	"AmmoCost":           "Ammo consumption",
	"StatusChance":       "Status effect chance",
	"StatusDamage":       "Status effect damage",
	"EquipTime":          "Weapon equip time",
	"PutDownTime":        "Weapon holster time",
	"ZoomDuration":       "ADS zoom time",
	"ElementalPower":     "Elemental damage bonus",
	"DamageRadius":       "Splash damage radius",
}
