package editor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-md/inkwell/internal/app"
)

// statusMsg replaces the status line. Shell-level feedback only; it never
// reaches the state machine.
type statusMsg struct {
	text string
}

const cloudTimeout = 10 * time.Second

// Each command performs one effect and hands its result back to the Update
// loop as the matching state-machine event.

func (m *Model) buildFileCmd(name string) tea.Cmd {
	return func() tea.Msg {
		raw, err := m.bridge.BuildFile(name)
		if err != nil {
			return statusMsg{text: "could not create file"}
		}
		return app.NewNoteBuiltFromTemplate{Raw: raw}
	}
}

func (m *Model) loadFileCmd(name string) tea.Cmd {
	return func() tea.Msg {
		raw, err := m.bridge.LoadFile(name)
		if err != nil {
			return statusMsg{text: "could not open file"}
		}
		return app.NoteLoadedFromDevice{Raw: raw}
	}
}

func (m *Model) writeFileCmd(name, text string) tea.Cmd {
	return func() tea.Msg {
		if m.watcher != nil {
			m.watcher.MarkSelfWrite()
		}
		return app.DeviceWriteAcknowledged{OK: m.bridge.WriteFile(name, text)}
	}
}

func (m *Model) persistPrefsCmd(p app.PersistPreferences) tea.Cmd {
	return func() tea.Msg {
		// Persist failures are invisible; the session keeps its state either
		// way and the next transition retries.
		_ = m.bridge.PersistPreferences(p.Prefs)
		return nil
	}
}

func (m *Model) propagateTitleCmd(title string) tea.Cmd {
	return func() tea.Msg {
		m.bridge.PropagateTitle(title)
		return nil
	}
}

func (m *Model) propagateTextCmd(text string) tea.Cmd {
	return func() tea.Msg {
		m.bridge.PropagateText(text)
		return nil
	}
}

func (m *Model) fetchCloudListCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cloudTimeout)
		defer cancel()
		files, err := m.cloud.List(ctx)
		return app.RemoteListReceived{Files: files, Err: err}
	}
}

func (m *Model) fetchCloudFileCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cloudTimeout)
		defer cancel()
		text, err := m.cloud.Get(ctx, name)
		return app.RemoteFileReceived{Name: name, Text: text, Err: err}
	}
}

func (m *Model) pushCloudFileCmd(name, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cloudTimeout)
		defer cancel()
		_, err := m.cloud.Put(ctx, name, text)
		return app.RemoteSaveAcknowledged{Err: err}
	}
}
