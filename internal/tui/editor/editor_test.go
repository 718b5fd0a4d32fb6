package editor

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-md/inkwell/internal/app"
	"github.com/inkwell-md/inkwell/internal/bridge"
	"github.com/inkwell-md/inkwell/internal/cloud"
	"github.com/inkwell-md/inkwell/internal/menu"
	"github.com/inkwell-md/inkwell/internal/prefs"
	"github.com/inkwell-md/inkwell/internal/view"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	dir := t.TempDir()
	b := bridge.New(dir, filepath.Join(dir, "prefs.json"))
	return NewModel(b, cloud.New("http://localhost:0"), prefs.Default(), nil)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestRemoteListEventUpdatesStateAndStopsSpinner(t *testing.T) {
	m := newTestModel(t)
	m.fetching = true

	updated, _ := m.Update(app.RemoteListReceived{Files: []string{"a.md", "b.md"}})
	m = updated.(*Model)

	if m.fetching {
		t.Error("fetching still set after list arrived")
	}
	if len(m.st.CloudFiles) != 2 {
		t.Errorf("cloudFiles = %v", m.st.CloudFiles)
	}
}

func TestDeviceWriteAckSetsStatus(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(app.DeviceWriteAcknowledged{OK: true})
	m = updated.(*Model)
	if m.status != "saved" {
		t.Errorf("status = %q", m.status)
	}

	updated, _ = m.Update(app.DeviceWriteAcknowledged{OK: false})
	m = updated.(*Model)
	if m.status != "save failed" {
		t.Errorf("status = %q", m.status)
	}
}

func TestMenuNavigationResolvesAgainstFreshTree(t *testing.T) {
	m := newTestModel(t)
	m.menu.reset()

	root := view.Project(m.st).Menu
	node := m.menu.resolve(root)
	if node.ID != "root" {
		t.Fatalf("node = %q", node.ID)
	}

	// Descend into Cloud, then into its Open submenu.
	m.menu.descend(root.Children[1].(menu.Node))
	cloudNode := m.menu.resolve(view.Project(m.st).Menu)
	if cloudNode.ID != "cloud" {
		t.Fatalf("node = %q", cloudNode.ID)
	}

	// A refreshed list shows up without resetting navigation.
	m.st.CloudFiles = []string{"a.md"}
	openNode := cloudNode.Children[1].(menu.Node)
	m.menu.descend(openNode)
	got := m.menu.resolve(view.Project(m.st).Menu)
	if len(got.Children) != 1 {
		t.Errorf("open submenu has %d children, want 1", len(got.Children))
	}
}

func TestMenuCursorClampsWhenTreeShrinks(t *testing.T) {
	m := newTestModel(t)
	m.menu.reset()
	m.st.CloudFiles = []string{"a.md", "b.md", "c.md"}

	root := view.Project(m.st).Menu
	m.menu.descend(root.Children[1].(menu.Node))
	cloudNode := m.menu.resolve(view.Project(m.st).Menu)
	openNode := cloudNode.Children[1].(menu.Node)
	m.menu.descend(openNode)

	node := m.menu.resolve(view.Project(m.st).Menu)
	m.menu.moveDown(node)
	m.menu.moveDown(node)
	if m.menu.cursor(node) != 2 {
		t.Fatalf("cursor = %d", m.menu.cursor(node))
	}

	m.st.CloudFiles = []string{"a.md"}
	node = m.menu.resolve(view.Project(m.st).Menu)
	if m.menu.cursor(node) != 0 {
		t.Errorf("cursor = %d after shrink, want 0", m.menu.cursor(node))
	}
}

func TestSelectingMenuLeafDispatchesItsEvent(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeMenu
	m.menu.reset()

	// Root → View → Theme → Dark.
	root := view.Project(m.st).Menu
	m.menu.descend(root.Children[2].(menu.Node))
	viewNode := m.menu.resolve(view.Project(m.st).Menu)
	m.menu.descend(viewNode.Children[0].(menu.Node))

	themeNode := m.menu.resolve(view.Project(m.st).Menu)
	m.menu.moveDown(themeNode)

	updated, _ := m.handleMenuKey(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m = updated.(*Model)

	if m.st.Prefs.ColorTheme != prefs.ThemeDark {
		t.Errorf("theme = %q, want Dark", m.st.Prefs.ColorTheme)
	}
	if m.mode != modeEdit {
		t.Errorf("mode = %d, want edit", m.mode)
	}
}

func TestTogglePreviewFromFocus(t *testing.T) {
	m := newTestModel(t)
	m.st.Prefs.LayoutMode = prefs.LayoutFocus

	updated, _ := m.handleEditKey(tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	m = updated.(*Model)
	if m.st.Prefs.LayoutMode != prefs.LayoutRead {
		t.Errorf("layout = %q, want Read", m.st.Prefs.LayoutMode)
	}
}

func TestTypingIsIgnoredInReadLayout(t *testing.T) {
	m := newTestModel(t)
	m.st.Prefs.LayoutMode = prefs.LayoutRead
	m.st.Note = m.st.Note.WithText("frozen")

	updated, _ := m.handleEditKey(keyMsg("x"))
	m = updated.(*Model)
	if m.st.Note.Text != "frozen" {
		t.Errorf("text = %q, want frozen", m.st.Note.Text)
	}
}

func TestTypingDispatchesEditText(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.handleEditKey(keyMsg("h"))
	m = updated.(*Model)
	if m.st.Note.Text != "h" {
		t.Errorf("text = %q, want h", m.st.Note.Text)
	}
}

func TestPromptOpensOnSaveOfUnboundNote(t *testing.T) {
	m := newTestModel(t)
	m.st.Note = m.st.Note.WithText("body")

	updated, _ := m.Update(app.Event(app.MenuSaveFile{}))
	m = updated.(*Model)
	if m.mode != modePrompt || m.purpose != promptSaveAs {
		t.Errorf("mode = %d purpose = %d", m.mode, m.purpose)
	}
}
