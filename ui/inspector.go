package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/monokrome/bl4-sub000/ds"
	"github.com/monokrome/bl4-sub000/serial"
	"github.com/monokrome/bl4-sub000/serial/spart"
	"github.com/monokrome/bl4-sub000/serial/sref"
)

type Inspector struct {
	catalog spart.Catalog
	input   string
	model   *serial.ItemModel
	err     error
	history *ds.Stack[string]
}

func CreateInspector(catalog spart.Catalog) Inspector {
	return Inspector{
		catalog: catalog,
		history: ds.NewStack[string](),
	}
}

// cleanInput mirrors the cleaning the CLI applies to pasted serials.
func cleanInput(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), `\`, "")
}

func (i Inspector) Init() tea.Cmd {
	return nil
}

func (i Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return i, tea.Quit
		case tea.KeyEnter:
			cleaned := cleanInput(i.input)
			if cleaned == "" {
				return i, nil
			}
			i.history.Push(cleaned)
			i.model, i.err = serial.DecodeWithCatalog(cleaned, i.catalog)
			i.input = ""
			return i, nil
		case tea.KeyBackspace:
			if i.input != "" {
				i.input = i.input[:len(i.input)-1]
			}
			return i, nil
		case tea.KeyUp:
			if i.history.Len() > 0 {
				i.input = i.history.Peek()
			}
			return i, nil
		case tea.KeySpace:
			i.input += " "
			return i, nil
		case tea.KeyRunes:
			i.input += string(msg.Runes)
			return i, nil
		}
	}
	return i, nil
}

// Summarize renders a decoded model the way the inspector shows it,
// one field per line.
func Summarize(model *serial.ItemModel) string {
	output := "Item type: " + model.TypeDescription() + "\n"
	if info, ok := model.WeaponInfo(); ok {
		output += "Weapon: " + info.Manufacturer + " " + info.WeaponType + "\n"
	}
	if name, ok := model.CategoryName(); ok {
		output += fmt.Sprintf("Category: %s (%d)\n", name, model.Category)
	}
	elements := model.ElementTypes()
	if len(elements) > 0 {
		names := lo.Map(elements, func(element sref.ElementType, _ int) string {
			return element.Name
		})
		output += "Element: " + strings.Join(names, ", ") + "\n"
	}
	if model.LevelKnown {
		output += fmt.Sprintf("Level: %d\n", model.Level)
	}
	if model.SeedKnown {
		output += fmt.Sprintf("Seed: %d\n", model.Seed)
	}
	output += "Tokens: " + model.FormatTokens() + "\n"
	if len(model.Parts) > 0 {
		resolved := lo.CountBy(model.Parts, func(part spart.ResolvedPart) bool {
			return part.Resolved
		})
		output += fmt.Sprintf("Parts: %d (%d resolved)\n", len(model.Parts), resolved)
	}
	return output
}

func (i Inspector) View() string {
	output := "SERIAL INSPECTOR\n\n"
	output += "> " + i.input + "▌\n\n"
	switch {
	case i.err != nil:
		output += "Serial could not be decoded!\n"
		output += i.err.Error() + "\n"
	case i.model != nil:
		output += Summarize(i.model)
	default:
		output += "Paste a serial and press Enter. Esc quits.\n"
	}
	if i.history.Len() > 0 {
		output += fmt.Sprintf("\nInspected: %d (Up repeats the last one)\n", i.history.Len())
	}
	return output
}
