// Package editor is the Bubble Tea shell around the application core. It
// translates terminal input into state-machine events, executes the effects
// each transition emits, and renders the resulting state.
package editor

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/inkwell-md/inkwell/internal/app"
	"github.com/inkwell-md/inkwell/internal/bridge"
	"github.com/inkwell-md/inkwell/internal/cache"
	"github.com/inkwell-md/inkwell/internal/cloud"
	"github.com/inkwell-md/inkwell/internal/menu"
	"github.com/inkwell-md/inkwell/internal/prefs"
	"github.com/inkwell-md/inkwell/internal/view"
)

type uiMode int

const (
	modeEdit uiMode = iota
	modeMenu
	modePrompt
	modePicker
)

type promptPurpose int

const (
	promptNewFile promptPurpose = iota
	promptSaveAs
)

type pickerItem string

func (p pickerItem) Title() string       { return string(p) }
func (p pickerItem) Description() string { return "" }
func (p pickerItem) FilterValue() string { return string(p) }

type Model struct {
	st app.State

	bridge  *bridge.Bridge
	cloud   *cloud.Client
	watcher *bridge.Watcher

	area      textarea.Model
	nameInput textinput.Model
	picker    list.Model
	spin      spinner.Model

	keys    *editorKeyMap
	styles  styles
	menu    menuState
	mode    uiMode
	purpose promptPurpose

	renderer      *glamour.TermRenderer
	previews      *cache.Cache
	renderedWidth int

	initial  app.Event
	fetching bool
	status   string
	width    int
	height   int
}

// NewModel builds the editor shell. initial, when non-nil, is dispatched on
// startup (the open command uses it to preload a picked note).
func NewModel(
	b *bridge.Bridge,
	c *cloud.Client,
	p prefs.Preferences,
	initial app.Event,
) *Model {
	st := app.NewState(p)

	area := textarea.New()
	area.Placeholder = "Start writing..."
	area.Focus()

	input := textinput.New()
	input.Placeholder = "filename.md"
	input.CharLimit = 120

	picker := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	picker.Title = "Open note"
	picker.SetShowStatusBar(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		st:        st,
		bridge:    b,
		cloud:     c,
		area:      area,
		nameInput: input,
		picker:    picker,
		spin:      sp,
		keys:      newEditorKeyMap(),
		styles:    newStyles(view.ThemeClass(st.Prefs.ColorTheme)),
		menu:      newMenuState(),
		previews:  cache.New(16),
		initial:   initial,
	}
	m.refreshRenderer()
	return m
}

// StartWatcher attaches an fsnotify watcher so external edits to the bound
// file reload it. The editor works without one.
func (m *Model) StartWatcher() error {
	w, err := bridge.NewWatcher(m.bridge.Dir())
	if err != nil {
		return err
	}
	m.watcher = w
	return nil
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Wait())
	}
	if m.initial != nil {
		initial := m.initial
		cmds = append(cmds, func() tea.Msg { return initial })
	}
	return tea.Batch(cmds...)
}

// dispatch runs one event through the core and turns the emitted effects
// into commands, preserving their order.
func (m *Model) dispatch(ev app.Event) tea.Cmd {
	next, effects := app.Update(ev, m.st)
	m.st = next
	m.syncShell(ev)

	cmds := make([]tea.Cmd, 0, len(effects))
	for _, eff := range effects {
		if cmd := m.perform(eff); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// syncShell reconciles shell-owned widgets with the state the core just
// produced.
func (m *Model) syncShell(ev app.Event) {
	switch ev.(type) {
	case app.NoteLoadedFromDevice, app.NewNoteBuiltFromTemplate, app.RemoteFileReceived:
		m.area.SetValue(m.st.Note.Text)
		m.mode = modeEdit
	case app.MenuChangeTheme:
		m.styles = newStyles(view.ThemeClass(m.st.Prefs.ColorTheme))
		m.refreshRenderer()
	case app.SetLayout, app.MenuChangeLayout, app.ToggleReadPreview:
		m.layoutPanes()
	}

	if m.watcher != nil {
		if m.st.Note.Bound() {
			m.watcher.Bind(m.st.Note.Name)
		} else {
			m.watcher.Bind("")
		}
	}
}

func (m *Model) perform(eff app.Effect) tea.Cmd {
	switch eff := eff.(type) {
	case app.CreateNewFile:
		m.openPrompt(promptNewFile)
		return textinput.Blink
	case app.OpenFilePicker:
		return m.openPicker()
	case app.OverwriteFile:
		return m.writeFileCmd(m.st.Note.Name, eff.Text)
	case app.SaveFileAs:
		m.openPrompt(promptSaveAs)
		return textinput.Blink
	case app.PropagateText:
		return m.propagateTextCmd(eff.Text)
	case app.PropagateTitle:
		return m.propagateTitleCmd(eff.Title)
	case app.PersistPreferences:
		return m.persistPrefsCmd(eff)
	case app.FetchCloudList:
		m.fetching = true
		return tea.Batch(m.spin.Tick, m.fetchCloudListCmd())
	case app.FetchCloudFile:
		m.fetching = true
		return tea.Batch(m.spin.Tick, m.fetchCloudFileCmd(eff.Name))
	case app.PushCloudFile:
		m.fetching = true
		return tea.Batch(m.spin.Tick, m.pushCloudFileCmd(eff.Name, eff.Text))
	}
	return nil
}

func (m *Model) openPrompt(purpose promptPurpose) {
	m.purpose = purpose
	m.nameInput.SetValue("")
	m.nameInput.Focus()
	m.mode = modePrompt
}

func (m *Model) openPicker() tea.Cmd {
	names, err := m.bridge.ListFiles()
	if err != nil {
		m.status = "could not list notes"
		return nil
	}
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = pickerItem(name)
	}
	m.mode = modePicker
	m.picker.SetSize(m.width, m.height-2)
	return m.picker.SetItems(items)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanes()
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusMsg:
		m.status = msg.text
		return m, nil

	case bridge.FileChangedMsg:
		cmds := []tea.Cmd{m.loadFileCmd(msg.Name)}
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.Wait())
		}
		return m, tea.Batch(cmds...)

	case bridge.WatcherErrMsg:
		m.status = "file watcher stopped"
		return m, nil

	case app.Event:
		switch ev := msg.(type) {
		case app.RemoteListReceived, app.RemoteSaveAcknowledged:
			m.fetching = false
		case app.RemoteFileReceived:
			m.fetching = false
			if ev.Err != nil {
				m.status = "cloud fetch failed"
			}
		case app.DeviceWriteAcknowledged:
			if ev.OK {
				m.status = "saved"
			} else {
				m.status = "save failed"
			}
		}
		return m, m.dispatch(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blinks and the like) belongs to the widgets.
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit
	}

	switch m.mode {
	case modeMenu:
		return m.handleMenuKey(msg)
	case modePrompt:
		return m.handlePromptKey(msg)
	case modePicker:
		return m.handlePickerKey(msg)
	}
	return m.handleEditKey(msg)
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.openMenu):
		m.menu.reset()
		m.mode = modeMenu
		return m, nil
	case key.Matches(msg, m.keys.togglePreview):
		return m, m.dispatch(app.ToggleReadPreview{})
	case key.Matches(msg, m.keys.newFile):
		return m, m.dispatch(app.MenuNewFile{})
	case key.Matches(msg, m.keys.openFile):
		return m, m.dispatch(app.MenuOpenFile{})
	case key.Matches(msg, m.keys.saveFile):
		return m, m.dispatch(app.MenuSaveFile{})
	case key.Matches(msg, m.keys.saveCloud):
		return m, m.dispatch(app.MenuSaveCloudFile{})
	case key.Matches(msg, m.keys.copyNote):
		if err := clipboard.WriteAll(m.st.Note.Text); err != nil {
			m.status = "copy failed"
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil
	}

	// The Read layout has no editor pane; everything else is typing.
	if m.st.Prefs.LayoutMode == prefs.LayoutRead {
		return m, nil
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if body := m.area.Value(); body != m.st.Note.Text {
		return m, tea.Batch(cmd, m.dispatch(app.EditText{Body: body}))
	}
	return m, cmd
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	root := view.Project(m.st).Menu
	node := m.menu.resolve(root)

	switch {
	case key.Matches(msg, m.keys.menuUp):
		m.menu.moveUp(node)
	case key.Matches(msg, m.keys.menuDown):
		m.menu.moveDown(node)
	case key.Matches(msg, m.keys.menuSelect):
		switch sel := m.menu.selected(node).(type) {
		case menu.Node:
			m.menu.descend(sel)
		case menu.Leaf:
			m.mode = modeEdit
			return m, m.dispatch(sel.Event)
		}
	case key.Matches(msg, m.keys.menuBack):
		if !m.menu.ascend() {
			m.mode = modeEdit
		}
	}
	return m, nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.mode = modeEdit
		return m, nil
	case key.Matches(msg, m.keys.submit):
		name := m.nameInput.Value()
		if name == "" {
			return m, nil
		}
		m.mode = modeEdit
		if m.purpose == promptNewFile {
			return m, m.buildFileCmd(name)
		}
		return m, m.writeFileCmd(name, m.st.Note.Text)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		if !m.picker.SettingFilter() {
			m.mode = modeEdit
			return m, nil
		}
	case key.Matches(msg, m.keys.submit):
		if !m.picker.SettingFilter() {
			if item, ok := m.picker.SelectedItem().(pickerItem); ok {
				m.mode = modeEdit
				return m, m.loadFileCmd(string(item))
			}
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}
