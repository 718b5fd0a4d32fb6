package editor

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// styles carries every lipgloss style the editor renders with. One set per
// theme class, selected whenever the theme changes.
type styles struct {
	statusBar  lipgloss.Style
	statusNote lipgloss.Style
	editorPane lipgloss.Style
	preview    lipgloss.Style
	menuPane   lipgloss.Style
	menuTitle  lipgloss.Style
	menuItem   lipgloss.Style
	menuCursor lipgloss.Style
	prompt     lipgloss.Style
}

func newStyles(themeClass string) styles {
	switch themeClass {
	case "theme-white":
		return styles{
			statusBar: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#222")).
				Background(lipgloss.Color("#DDD")).
				Padding(0, 1),
			statusNote: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0057B7")).
				Bold(true),
			editorPane: lipgloss.NewStyle().
				MarginRight(1),
			preview: lipgloss.NewStyle().
				MarginLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("#AAB2BD")),
			menuPane: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#AAB2BD")).
				Padding(0, 2),
			menuTitle: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0057B7")).
				Bold(true).
				Padding(0, 1),
			menuItem: lipgloss.NewStyle().
				Padding(0, 1),
			menuCursor: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("#0057B7")).
				Bold(true).
				Padding(0, 1),
			prompt: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1),
		}
	case "theme-dark":
		return styles{
			statusBar: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#DDD")).
				Background(lipgloss.Color("#333")).
				Padding(0, 1),
			statusNote: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Bold(true),
			editorPane: lipgloss.NewStyle().
				MarginRight(1),
			preview: lipgloss.NewStyle().
				MarginLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("#334455")),
			menuPane: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#334455")).
				Padding(0, 2),
			menuTitle: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Bold(true).
				Padding(0, 1),
			menuItem: lipgloss.NewStyle().
				Padding(0, 1),
			menuCursor: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("#0AF")).
				Bold(true).
				Padding(0, 1),
			prompt: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1),
		}
	}
	panic(fmt.Sprintf("editor: unmapped theme class %q", themeClass))
}
