package serial

// Diff lists the token positions where two models disagree, comparing
// position by position. A position one stream lacks shows up with the
// missing side nil. Models of different layouts never line up, so
// those refuse to diff.
func Diff(a *ItemModel, b *ItemModel) ([]TokenDiff, error) {
	if a.Layout != b.Layout {
		return nil, ErrIncompatibleLayout{A: a.Layout, B: b.Layout}
	}
	diffs := []TokenDiff{}
	for i := 0; i < len(a.Tokens) || i < len(b.Tokens); i++ {
		switch {
		case i >= len(a.Tokens):
			diffs = append(diffs, TokenDiff{Position: i, B: &b.Tokens[i]})
		case i >= len(b.Tokens):
			diffs = append(diffs, TokenDiff{Position: i, A: &a.Tokens[i]})
		case !a.Tokens[i].Equal(b.Tokens[i]):
			diffs = append(diffs, TokenDiff{Position: i, A: &a.Tokens[i], B: &b.Tokens[i]})
		}
	}
	return diffs, nil
}
