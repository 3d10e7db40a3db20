package spart

// ClassifyIndex derives what a raw part index points at. 128 through
// 142 are element markers. Above that range, a set bit 7 moves the
// reference into the sub scope and the low seven bits address the
// catalog; anything else addresses the root scope unchanged.
func ClassifyIndex(rawIndex uint32) Ref {
	if rawIndex >= 128 && rawIndex <= 142 {
		return Ref{
			RawIndex:  rawIndex,
			IsElement: true,
			ElementId: rawIndex - 128,
		}
	}
	if rawIndex > 142 && rawIndex&0x80 != 0 {
		return Ref{
			RawIndex: rawIndex,
			Scope:    ScopeSub,
			Index:    rawIndex & 0x7F,
		}
	}
	return Ref{
		RawIndex: rawIndex,
		Scope:    ScopeRoot,
		Index:    rawIndex,
	}
}

// Resolve classifies the raw index and looks its catalog identity up.
func Resolve(catalog Catalog, category uint32, rawIndex uint32) ResolvedPart {
	ref := ClassifyIndex(rawIndex)
	if ref.IsElement {
		return ResolvedPart{Ref: ref}
	}
	identity, ok := catalog.Lookup(category, ref.Scope, ref.Index)
	return ResolvedPart{
		Ref:      ref,
		Name:     identity.Name,
		Resolved: ok,
	}
}
