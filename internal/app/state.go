// Package app is the editor core: an application state value, the events
// that can happen to it, and a pure transition function that maps each event
// to a new state plus the side effects the shell should perform. The core
// never does I/O itself; the Bubble Tea shell interprets the effects and
// feeds the results back in as new events.
package app

import (
	"github.com/inkwell-md/inkwell/internal/note"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

// State is the single top-level aggregate. It is passed and returned by
// value; a transition replaces it wholesale instead of mutating in place.
type State struct {
	Prefs      prefs.Preferences
	Note       note.Note
	CloudFiles []string
}

// NewState builds the startup state from whatever preferences decoded from
// device storage. The note starts empty and unbound; the cloud file list
// starts unknown.
func NewState(p prefs.Preferences) State {
	return State{
		Prefs: p,
		Note:  note.Empty(),
	}
}

func (s State) withNote(n note.Note) State {
	s.Note = n
	return s
}

func (s State) withTheme(t prefs.ColorTheme) State {
	s.Prefs.ColorTheme = t
	return s
}

func (s State) withLayout(m prefs.LayoutMode) State {
	s.Prefs.LayoutMode = m
	return s
}

func (s State) withCloudFiles(files []string) State {
	s.CloudFiles = files
	return s
}
