package serial

// weaponLevel maps a wire level code to a character level. Codes 1
// through 15 are the level itself. Codes 128 and up spread a level of
// 16 or more across the upper bits and the parity bit. Anything else
// is kept verbatim and flagged.
func weaponLevel(code uint32) (uint32, bool) {
	switch {
	case code >= 1 && code <= 15:
		return code, false
	case code >= 128:
		return 16 + (code>>1)&0x3F + 8*(code&1), false
	}
	return code, true
}

// equipmentLevel maps the raw level field to its displayed value. The
// wire value is one below the display value. Displays outside 1..50
// are kept verbatim and flagged, never clamped.
func equipmentLevel(raw uint32) (uint32, bool) {
	level := raw + 1
	return level, level > 50
}
