package spart

type (
	Scope string
	// Ref classifies a raw part index from the token stream. Indices
	// 128 through 142 are element markers rather than catalog
	// references; everything else addresses a catalog slot in either
	// the root or the sub scope.
	Ref struct {
		RawIndex  uint32 `json:"raw_index"`
		IsElement bool   `json:"is_element,omitempty"`
		ElementId uint32 `json:"element_id,omitempty"`
		Scope     Scope  `json:"scope,omitempty"`
		Index     uint32 `json:"index,omitempty"`
	}
	PartIdentity struct {
		Name string `json:"name"`
	}
	// ResolvedPart pairs a classified reference with its catalog
	// identity. A miss keeps the reference and clears Resolved, it is
	// never an error.
	ResolvedPart struct {
		Ref      Ref    `json:"ref"`
		Name     string `json:"name,omitempty"`
		Resolved bool   `json:"resolved"`
	}
	PartKey struct {
		Category uint32
		Scope    Scope
		Index    uint32
	}
	// Catalog answers part identity and category lookups. It is loaded
	// once and passed around immutable, the decode paths only read it.
	Catalog interface {
		Lookup(category uint32, scope Scope, index uint32) (PartIdentity, bool)
		CategoryFor(wireID uint32) (uint32, bool)
	}
	MapCatalog struct {
		Parts      map[PartKey]PartIdentity
		Categories map[uint32]uint32
	}
)

const (
	ScopeRoot = Scope("root")
	ScopeSub  = Scope("sub")
)

func (c MapCatalog) Lookup(category uint32, scope Scope, index uint32) (PartIdentity, bool) {
	identity, ok := c.Parts[PartKey{Category: category, Scope: scope, Index: index}]
	return identity, ok
}

// CategoryFor prefers the loaded overrides and falls back to the
// built-in weapon table.
func (c MapCatalog) CategoryFor(wireID uint32) (uint32, bool) {
	if category, ok := c.Categories[wireID]; ok {
		return category, true
	}
	return WeaponCategory(wireID)
}
