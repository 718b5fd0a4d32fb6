package editor

import "github.com/charmbracelet/bubbles/key"

type editorKeyMap struct {
	openMenu      key.Binding
	togglePreview key.Binding
	newFile       key.Binding
	openFile      key.Binding
	saveFile      key.Binding
	saveCloud     key.Binding
	copyNote      key.Binding
	quit          key.Binding

	menuUp     key.Binding
	menuDown   key.Binding
	menuSelect key.Binding
	menuBack   key.Binding

	submit key.Binding
	cancel key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		openMenu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle preview"),
		),
		newFile: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		openFile: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
		saveFile: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		saveCloud: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "save to cloud"),
		),
		copyNote: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy note"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		menuUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		menuDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		menuSelect: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("↵", "select"),
		),
		menuBack: key.NewBinding(
			key.WithKeys("esc", "left", "h"),
			key.WithHelp("esc", "back"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
