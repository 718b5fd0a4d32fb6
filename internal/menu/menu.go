// Package menu builds the editor's hierarchical menu as a small tagged tree.
// The tree is rebuilt from the application state on every render, so the
// Cloud/Open submenu always mirrors the latest known remote file list.
package menu

import (
	"github.com/inkwell-md/inkwell/internal/app"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

// Item is either a Leaf carrying the event to fire on selection, or a Node
// holding children.
type Item interface{ isItem() }

type Leaf struct {
	ID    string
	Label string
	Event app.Event
}

type Node struct {
	ID       string
	Label    string
	Children []Item
}

func (Leaf) isItem() {}
func (Node) isItem() {}

// Build derives the full menu from the current state.
func Build(st app.State) Node {
	return Node{
		ID:    "root",
		Label: "Menu",
		Children: []Item{
			fileMenu(),
			cloudMenu(st.CloudFiles),
			viewMenu(),
		},
	}
}

func fileMenu() Node {
	return Node{
		ID:    "file",
		Label: "File",
		Children: []Item{
			Leaf{ID: "file-new", Label: "New", Event: app.MenuNewFile{}},
			Leaf{ID: "file-open", Label: "Open", Event: app.MenuOpenFile{}},
			Leaf{ID: "file-save", Label: "Save", Event: app.MenuSaveFile{}},
		},
	}
}

func cloudMenu(files []string) Node {
	open := Node{
		ID:    "cloud-open",
		Label: "Open",
	}
	for _, name := range files {
		open.Children = append(open.Children, Leaf{
			ID:    "cloud-open-" + name,
			Label: name,
			Event: app.MenuOpenCloudFile{Name: name},
		})
	}

	return Node{
		ID:    "cloud",
		Label: "Cloud",
		Children: []Item{
			Leaf{ID: "cloud-list", Label: "Refresh", Event: app.MenuListCloudFiles{}},
			open,
			Leaf{ID: "cloud-save", Label: "Save", Event: app.MenuSaveCloudFile{}},
		},
	}
}

// viewMenu offers Write and Focus only; the Read layout is reached through
// the preview toggle, not the menu.
func viewMenu() Node {
	return Node{
		ID:    "view",
		Label: "View",
		Children: []Item{
			Node{
				ID:    "view-theme",
				Label: "Theme",
				Children: []Item{
					Leaf{ID: "theme-white", Label: "White", Event: app.MenuChangeTheme{Theme: prefs.ThemeWhite}},
					Leaf{ID: "theme-dark", Label: "Dark", Event: app.MenuChangeTheme{Theme: prefs.ThemeDark}},
				},
			},
			Node{
				ID:    "view-layout",
				Label: "Layout",
				Children: []Item{
					Leaf{ID: "layout-write", Label: "Write", Event: app.MenuChangeLayout{Mode: prefs.LayoutWrite}},
					Leaf{ID: "layout-focus", Label: "Focus", Event: app.MenuChangeLayout{Mode: prefs.LayoutFocus}},
				},
			},
		},
	}
}
