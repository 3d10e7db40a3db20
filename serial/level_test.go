package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeaponLevel(t *testing.T) {
	type Expected struct {
		Level      uint32
		OutOfRange bool
	}
	expectedMap := map[uint32]Expected{
		1:   {1, false},
		7:   {7, false},
		15:  {15, false},
		128: {16, false},
		129: {24, false},
		135: {27, false},
		196: {50, false},
		255: {87, false},
		0:   {0, true},
		16:  {16, true},
		100: {100, true},
		127: {127, true},
	}
	for code, expected := range expectedMap {
		level, outOfRange := weaponLevel(code)
		assert.Equal(t, expected.Level, level, "code %d", code)
		assert.Equal(t, expected.OutOfRange, outOfRange, "code %d", code)
	}
}

func TestEquipmentLevel(t *testing.T) {
	type Expected struct {
		Level      uint32
		OutOfRange bool
	}
	expectedMap := map[uint32]Expected{
		0:  {1, false},
		29: {30, false},
		48: {49, false},
		49: {50, false},
		50: {51, true},
		99: {100, true},
	}
	for raw, expected := range expectedMap {
		level, outOfRange := equipmentLevel(raw)
		assert.Equal(t, expected.Level, level, "raw %d", raw)
		assert.Equal(t, expected.OutOfRange, outOfRange, "raw %d", raw)
	}
}
