package stoken

// Equal reports whether two tokens carry the same wire content. Widths
// count: two varbits with the same value but different widths write
// different bits.
func (token Token) Equal(other Token) bool {
	if token.Kind != other.Kind ||
		token.Value != other.Value ||
		token.Width != other.Width ||
		token.Index != other.Index ||
		token.ValueKind != other.ValueKind ||
		token.Str != other.Str ||
		len(token.Entries) != len(other.Entries) {
		return false
	}
	for i, entry := range token.Entries {
		if entry != other.Entries[i] {
			return false
		}
	}
	return true
}
