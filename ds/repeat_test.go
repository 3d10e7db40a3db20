package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeat(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0}, Repeat(3, byte(0)))
	assert.Equal(t, []string{"|", "|"}, Repeat(2, "|"))
	assert.Empty(t, Repeat(0, 1))
}
