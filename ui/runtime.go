package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/monokrome/bl4-sub000/serial/spart"
)

func Start(catalog spart.Catalog) {
	inspector := CreateInspector(catalog)
	if err := tea.NewProgram(&inspector).Start(); err != nil {
		panic(err)
	}
}
