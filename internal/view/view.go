// Package view projects application state into a render tree: the menu, the
// pane visibility for the current layout, and the style classes for the
// current preferences. It is pure; the TUI consumes the projection and owns
// all terminal specifics.
package view

import (
	"fmt"

	"github.com/inkwell-md/inkwell/internal/app"
	"github.com/inkwell-md/inkwell/internal/menu"
	"github.com/inkwell-md/inkwell/internal/note"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

// Projection is everything a renderer needs for one frame.
type Projection struct {
	Menu        menu.Node
	Note        note.Note
	ShowEditor  bool
	ShowPreview bool
	ThemeClass  string
	LayoutClass string
}

func Project(st app.State) Projection {
	return Projection{
		Menu:        menu.Build(st),
		Note:        st.Note,
		ShowEditor:  showEditor(st.Prefs.LayoutMode),
		ShowPreview: showPreview(st.Prefs.LayoutMode),
		ThemeClass:  ThemeClass(st.Prefs.ColorTheme),
		LayoutClass: LayoutClass(st.Prefs.LayoutMode),
	}
}

// The class mappings are total: every variant maps to exactly one class and
// an unmapped variant is a programming defect, not a runtime fallback.

func ThemeClass(t prefs.ColorTheme) string {
	switch t {
	case prefs.ThemeWhite:
		return "theme-white"
	case prefs.ThemeDark:
		return "theme-dark"
	}
	panic(fmt.Sprintf("view: unmapped color theme %q", t))
}

func LayoutClass(m prefs.LayoutMode) string {
	switch m {
	case prefs.LayoutWrite:
		return "layout-write"
	case prefs.LayoutFocus:
		return "layout-focus"
	case prefs.LayoutRead:
		return "layout-read"
	}
	panic(fmt.Sprintf("view: unmapped layout mode %q", m))
}

// GlamourStyle names the markdown renderer style for a theme.
func GlamourStyle(t prefs.ColorTheme) string {
	switch t {
	case prefs.ThemeWhite:
		return "light"
	case prefs.ThemeDark:
		return "dark"
	}
	panic(fmt.Sprintf("view: unmapped color theme %q", t))
}

func showEditor(m prefs.LayoutMode) bool {
	switch m {
	case prefs.LayoutWrite, prefs.LayoutFocus:
		return true
	case prefs.LayoutRead:
		return false
	}
	panic(fmt.Sprintf("view: unmapped layout mode %q", m))
}

func showPreview(m prefs.LayoutMode) bool {
	switch m {
	case prefs.LayoutWrite, prefs.LayoutRead:
		return true
	case prefs.LayoutFocus:
		return false
	}
	panic(fmt.Sprintf("view: unmapped layout mode %q", m))
}
