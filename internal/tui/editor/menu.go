package editor

import (
	"strings"

	"github.com/inkwell-md/inkwell/internal/menu"
)

// menuState tracks where the user is inside the menu tree. Only the path of
// node ids and a cursor per level are kept; the tree itself is rebuilt from
// the application state on every use, so a refreshed cloud list shows up
// mid-navigation.
type menuState struct {
	path    []string
	cursors []int
}

func newMenuState() menuState {
	return menuState{cursors: []int{0}}
}

func (ms *menuState) reset() {
	ms.path = nil
	ms.cursors = []int{0}
}

// resolve walks the freshly built tree down the stored path, dropping any
// trailing path segments that no longer exist.
func (ms *menuState) resolve(root menu.Node) menu.Node {
	node := root
	for i, id := range ms.path {
		found := false
		for _, child := range node.Children {
			if n, ok := child.(menu.Node); ok && n.ID == id {
				node = n
				found = true
				break
			}
		}
		if !found {
			ms.path = ms.path[:i]
			ms.cursors = ms.cursors[:i+1]
			break
		}
	}
	return node
}

func (ms *menuState) cursor(node menu.Node) int {
	c := ms.cursors[len(ms.cursors)-1]
	if max := len(node.Children) - 1; c > max {
		c = max
	}
	if c < 0 {
		c = 0
	}
	return c
}

func (ms *menuState) moveUp(node menu.Node) {
	c := ms.cursor(node)
	if c > 0 {
		ms.cursors[len(ms.cursors)-1] = c - 1
	}
}

func (ms *menuState) moveDown(node menu.Node) {
	c := ms.cursor(node)
	if c < len(node.Children)-1 {
		ms.cursors[len(ms.cursors)-1] = c + 1
	}
}

// selected returns the item under the cursor, or nil for an empty submenu.
func (ms *menuState) selected(node menu.Node) menu.Item {
	if len(node.Children) == 0 {
		return nil
	}
	return node.Children[ms.cursor(node)]
}

func (ms *menuState) descend(n menu.Node) {
	ms.path = append(ms.path, n.ID)
	ms.cursors = append(ms.cursors, 0)
}

// ascend returns false when already at the root.
func (ms *menuState) ascend() bool {
	if len(ms.path) == 0 {
		return false
	}
	ms.path = ms.path[:len(ms.path)-1]
	ms.cursors = ms.cursors[:len(ms.cursors)-1]
	return true
}

func (m *Model) renderMenu(root menu.Node) string {
	node := m.menu.resolve(root)
	cursor := m.menu.cursor(node)

	var b strings.Builder
	b.WriteString(m.styles.menuTitle.Render(node.Label))
	b.WriteString("\n")

	if len(node.Children) == 0 {
		b.WriteString(m.styles.menuItem.Render("(empty)"))
	}
	for i, child := range node.Children {
		var label string
		switch child := child.(type) {
		case menu.Node:
			label = child.Label + " ▸"
		case menu.Leaf:
			label = child.Label
		}
		style := m.styles.menuItem
		if i == cursor {
			style = m.styles.menuCursor
		}
		b.WriteString(style.Render(label))
		if i < len(node.Children)-1 {
			b.WriteString("\n")
		}
	}

	return m.styles.menuPane.Render(b.String())
}
