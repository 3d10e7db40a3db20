package spart

type WeaponInfo struct {
	Manufacturer string `json:"manufacturer"`
	WeaponType   string `json:"weapon_type"`
}

// weaponInfoByWireId maps the first varint of a weapon stream to its
// manufacturer and weapon type.
var weaponInfoByWireId = map[uint32]WeaponInfo{
	1:   {"Daedalus", "Shotgun"},
	3:   {"Torgue", "Shotgun"},
	5:   {"Maliwan", "Shotgun"},
	9:   {"Jakobs", "Shotgun"},
	13:  {"Tediore", "Shotgun"},
	14:  {"Ripper", "Shotgun"},
	2:   {"Jakobs", "Pistol"},
	4:   {"Daedalus", "Pistol"},
	6:   {"Torgue", "Pistol"},
	10:  {"Tediore", "Pistol"},
	12:  {"Jakobs", "Pistol"},
	7:   {"Tediore", "AR"},
	11:  {"Daedalus", "AR"},
	15:  {"Order", "AR"},
	128: {"Vladof", "Sniper"},
	129: {"Jakobs", "Sniper"},
	133: {"Order", "Sniper"},
	137: {"Maliwan", "Sniper"},
	142: {"Bor", "Sniper"},
	130: {"Daedalus", "SMG"},
	134: {"Bor", "SMG"},
	138: {"Maliwan", "SMG"},
	140: {"Vladof", "SMG"},
	132: {"Vladof", "AR"},
	136: {"Torgue", "AR"},
	141: {"Jakobs", "AR"},
}

var weaponCategoryByWireId = map[uint32]uint32{
	1:   8,
	3:   11,
	5:   19,
	9:   9,
	13:  10,
	14:  12,
	2:   3,
	4:   2,
	6:   5,
	10:  4,
	12:  3,
	7:   15,
	11:  13,
	15:  18,
	128: 27,
	129: 26,
	133: 28,
	137: 29,
	142: 25,
	130: 20,
	134: 21,
	138: 23,
	140: 22,
	132: 17,
	136: 16,
	141: 14,
}

var categoryNames = map[uint32]string{
	2:   "Daedalus Pistol",
	3:   "Jakobs Pistol",
	4:   "Tediore Pistol",
	5:   "Torgue Pistol",
	6:   "Order Pistol",
	7:   "Vladof Pistol",
	8:   "Daedalus Shotgun",
	9:   "Jakobs Shotgun",
	10:  "Tediore Shotgun",
	11:  "Torgue Shotgun",
	12:  "Bor Shotgun",
	13:  "Daedalus Assault Rifle",
	14:  "Jakobs Assault Rifle",
	15:  "Tediore Assault Rifle",
	16:  "Torgue Assault Rifle",
	17:  "Vladof Assault Rifle",
	18:  "Order Assault Rifle",
	19:  "Maliwan Shotgun",
	20:  "Daedalus SMG",
	21:  "Bor SMG",
	22:  "Vladof SMG",
	23:  "Maliwan SMG",
	25:  "Bor Sniper",
	26:  "Jakobs Sniper",
	27:  "Vladof Sniper",
	28:  "Order Sniper",
	29:  "Maliwan Sniper",
	44:  "Dark Siren Class Mod",
	55:  "Paladin Class Mod",
	97:  "Gravitar Class Mod",
	140: "Exo Soldier Class Mod",
	151: "Firmware",
	244: "Vladof Heavy",
	245: "Torgue Heavy",
	246: "Bor Heavy",
	247: "Maliwan Heavy",
	279: "Energy Shield",
	280: "Bor Shield",
	281: "Daedalus Shield",
	282: "Jakobs Shield",
	283: "Armor Shield",
	284: "Maliwan Shield",
	285: "Order Shield",
	286: "Tediore Shield",
	287: "Torgue Shield",
	288: "Vladof Shield",
	289: "Shield Variant",
	300: "Grenade Gadget",
	310: "Turret Gadget",
	320: "Repair Kit",
	330: "Terminal Gadget",
	400: "Daedalus Enhancement",
	401: "Bor Enhancement",
	402: "Jakobs Enhancement",
	403: "Maliwan Enhancement",
	404: "Order Enhancement",
	405: "Tediore Enhancement",
	406: "Torgue Enhancement",
	407: "Vladof Enhancement",
	408: "COV Enhancement",
	409: "Atlas Enhancement",
}

func WeaponInfoFor(wireID uint32) (WeaponInfo, bool) {
	info, ok := weaponInfoByWireId[wireID]
	return info, ok
}

func WeaponCategory(wireID uint32) (uint32, bool) {
	category, ok := weaponCategoryByWireId[wireID]
	return category, ok
}

func CategoryName(category uint32) (string, bool) {
	name, ok := categoryNames[category]
	return name, ok
}

// ItemTypeName describes the class a type character belongs to.
// Weapons carry varint-first streams; equipment and class mods carry
// varbit-first streams.
func ItemTypeName(ch byte) string {
	switch {
	case ch >= 'a' && ch <= 'd':
		return "Weapon"
	case ch == 'f' || ch == 'g' || ch == 'r' || ch == 'u':
		return "Weapon"
	case ch >= 'v' && ch <= 'z':
		return "Weapon"
	case ch == 'e':
		return "Equipment"
	case ch == '!' || ch == '#':
		return "Class Mod"
	}
	return "Unknown"
}

// CategoryDivisor gives the divisor that turns a varbit-first stream's
// leading value into a category id. Weapon-class characters divide by
// 8192, equipment and class mods by 384; an unknown character leaves
// the category unresolved.
func CategoryDivisor(ch byte) (uint32, bool) {
	switch ItemTypeName(ch) {
	case "Weapon":
		return 8192, true
	case "Equipment", "Class Mod":
		return 384, true
	}
	return 0, false
}
