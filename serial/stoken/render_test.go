package stoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tokens := []Token{
		VarInt(138),
		SoftSeparator(),
		VarInt(0),
		Separator(),
		EmptyPart(197),
		SinglePart(8, 13),
		ListPart(250, SoftEntry(), IntEntry(133), IntEntry(139), IntEntry(35)),
		String(""),
		String("EchoLog"),
		Separator(),
		Separator(),
	}

	assert.Equal(
		t,
		`138 , 0 | {197} {8:13} {250:[, 133 139 35]} "" "EchoLog" | |`,
		Render(tokens),
	)
}

func TestRenderVarBitPlain(t *testing.T) {
	assert.Equal(t, "107200 | 49", Render([]Token{
		VarBit(107200, 17),
		Separator(),
		VarBit(49, 6),
	}))
}
