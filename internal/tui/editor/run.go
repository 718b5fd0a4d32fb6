package editor

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/inkwell-md/inkwell/internal/app"
	"github.com/inkwell-md/inkwell/internal/bridge"
	"github.com/inkwell-md/inkwell/internal/cloud"
	"github.com/inkwell-md/inkwell/internal/config"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

// Run wires the editor together and blocks until the user quits.
func Run(cfg *config.Config, prefsPath string, initial app.Event) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("inkwell needs an interactive terminal")
	}
	if err := cfg.EnsureNotesDir(); err != nil {
		return err
	}

	b := bridge.New(cfg.NotesDir, prefsPath)
	c := cloud.New(cfg.ServerURL)
	p := prefs.Load(prefsPath)

	m := NewModel(b, c, p, initial)
	if err := m.StartWatcher(); err == nil {
		defer m.watcher.Close()
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
