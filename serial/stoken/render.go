package stoken

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Render lays the tokens out on one line, the way the streams are
// usually eyeballed: numbers stay bare, separators become "|" and ",",
// parts become "{index}", "{index:value}" or "{index:[entries]}".
func Render(tokens []Token) string {
	rendered := lo.Map(
		tokens,
		func(token Token, _ int) string {
			return renderToken(token)
		},
	)
	return strings.Join(rendered, " ")
}

func renderToken(token Token) string {
	switch token.Kind {
	case KindSeparator:
		return "|"
	case KindSoftSeparator:
		return ","
	case KindVarInt, KindVarBit:
		return strconv.FormatUint(uint64(token.Value), 10)
	case KindPart:
		return renderPart(token)
	case KindString:
		if token.Str == "" {
			return `""`
		}
		return fmt.Sprintf("%q", token.Str)
	}
	return "?"
}

func renderPart(token Token) string {
	switch token.ValueKind {
	case PartValueSingle:
		return fmt.Sprintf("{%d:%d}", token.Index, token.Value)
	case PartValueList:
		entries := lo.Map(
			token.Entries,
			func(entry PartEntry, _ int) string {
				if entry.Kind == KindSoftSeparator {
					return ","
				}
				return strconv.FormatUint(uint64(entry.Value), 10)
			},
		)
		return fmt.Sprintf("{%d:[%s]}", token.Index, strings.Join(entries, " "))
	}
	return fmt.Sprintf("{%d}", token.Index)
}
