package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/inkwell-md/inkwell/internal/view"
)

func (m *Model) refreshRenderer() {
	width := m.previewWidth()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(view.GlamourStyle(m.st.Prefs.ColorTheme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	m.renderer = r
	m.previews.Purge()
	m.renderedWidth = width
}

func (m *Model) previewWidth() int {
	if m.width == 0 {
		return 80
	}
	p := view.Project(m.st)
	if p.ShowEditor && p.ShowPreview {
		return m.width / 2
	}
	return m.width
}

func (m *Model) layoutPanes() {
	p := view.Project(m.st)

	editorWidth := m.width
	if p.ShowEditor && p.ShowPreview {
		editorWidth = m.width / 2
	}
	m.area.SetWidth(editorWidth - 2)
	m.area.SetHeight(m.height - 2)
	m.picker.SetSize(m.width, m.height-2)

	if m.previewWidth() != m.renderedWidth {
		m.refreshRenderer()
	}
}

// preview renders the note body, reusing cached renders for text the
// renderer has already seen.
func (m *Model) preview() string {
	if m.renderer == nil {
		return m.st.Note.Text
	}
	if out, ok := m.previews.Get(m.st.Note.Text); ok {
		return out
	}
	out, err := m.renderer.Render(m.st.Note.Text)
	if err != nil {
		return m.st.Note.Text
	}
	m.previews.Put(m.st.Note.Text, out)
	return out
}

func (m *Model) statusLine() string {
	p := view.Project(m.st)

	name := m.st.Note.Name
	if !m.st.Note.Bound() {
		name += " [unsaved]"
	}
	left := m.styles.statusNote.Render(name)

	parts := []string{left, p.LayoutClass}
	if m.fetching {
		parts = append(parts, m.spin.View()+"cloud")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	line := strings.Join(parts, "  ")
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	return m.styles.statusBar.Width(m.width).Render(line)
}

func (m *Model) View() string {
	switch m.mode {
	case modeMenu:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderMenu(view.Project(m.st).Menu),
			m.statusLine(),
		)
	case modePrompt:
		label := "New file name"
		if m.purpose == promptSaveAs {
			label = "Save as"
		}
		prompt := m.styles.prompt.Render(
			fmt.Sprintf("%s\n\n%s", label, m.nameInput.View()),
		)
		return lipgloss.JoinVertical(lipgloss.Left, prompt, m.statusLine())
	case modePicker:
		return m.picker.View()
	}

	p := view.Project(m.st)
	var panes []string
	if p.ShowEditor {
		panes = append(panes, m.styles.editorPane.Render(m.area.View()))
	}
	if p.ShowPreview {
		panes = append(panes, m.styles.preview.Render(m.preview()))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}
