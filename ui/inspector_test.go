package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokrome/bl4-sub000/serial/spart"
)

const serialEnergyShield = "@Uge8jxm/)@{!gQaYMipv(G&-b*Z~_"

func typeText(inspector Inspector, text string) Inspector {
	next, _ := inspector.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Inspector)
}

func press(inspector Inspector, keyType tea.KeyType) Inspector {
	next, _ := inspector.Update(tea.KeyMsg{Type: keyType})
	return next.(Inspector)
}

func TestInspectorDecode(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	inspector = typeText(inspector, serialEnergyShield)
	assert.Equal(t, serialEnergyShield, inspector.input)

	inspector = press(inspector, tea.KeyEnter)
	require.NoError(t, inspector.err)
	require.NotNil(t, inspector.model)
	assert.Equal(t, "", inspector.input)
	assert.Equal(t, 1, inspector.history.Len())

	view := inspector.View()
	assert.True(t, strings.Contains(view, "Energy Shield"))
	assert.True(t, strings.Contains(view, "Seed: 2427"))
}

func TestInspectorCleansPastedText(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	inspector = typeText(inspector, `  `+serialEnergyShield+`\`)
	inspector = press(inspector, tea.KeyEnter)

	require.NoError(t, inspector.err)
	assert.Equal(t, serialEnergyShield, inspector.model.Raw)
}

func TestInspectorBadSerial(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	inspector = typeText(inspector, "not a serial")
	inspector = press(inspector, tea.KeyEnter)

	require.Error(t, inspector.err)
	assert.Nil(t, inspector.model)
	assert.True(t, strings.Contains(inspector.View(), "could not be decoded"))
}

func TestInspectorEmptyEnter(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	inspector = press(inspector, tea.KeyEnter)
	assert.Equal(t, 0, inspector.history.Len())
}

func TestInspectorEditing(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	inspector = typeText(inspector, "abc")
	inspector = press(inspector, tea.KeyBackspace)
	assert.Equal(t, "ab", inspector.input)

	inspector = press(inspector, tea.KeySpace)
	assert.Equal(t, "ab ", inspector.input)
}

func TestInspectorHistoryRecall(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	inspector = typeText(inspector, serialEnergyShield)
	inspector = press(inspector, tea.KeyEnter)
	assert.Equal(t, "", inspector.input)

	inspector = press(inspector, tea.KeyUp)
	assert.Equal(t, serialEnergyShield, inspector.input)
}

func TestInspectorQuit(t *testing.T) {
	inspector := CreateInspector(spart.MapCatalog{})
	_, cmd := inspector.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)

	_, cmd = inspector.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}
