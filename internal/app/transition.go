package app

import (
	"github.com/inkwell-md/inkwell/internal/note"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

// Transition is the whole state machine: pure, total, and synchronous. It
// never blocks and never fails — malformed payloads collapse to safe
// defaults and remote errors leave the state untouched, because the editor
// must stay interactive no matter what comes back over the wire.
func Transition(ev Event, st State) (State, []Effect) {
	switch ev := ev.(type) {
	case EditText:
		return st.withNote(st.Note.WithText(ev.Body)),
			[]Effect{PropagateText{Text: ev.Body}}

	case SetLayout:
		return st.withLayout(ev.Mode), nil

	case NoteLoadedFromDevice:
		n, err := note.Decode(ev.Raw)
		if err != nil {
			return st.withNote(note.Empty()), nil
		}
		return st.withNote(n), nil

	case NewNoteBuiltFromTemplate:
		n, err := note.Decode(ev.Raw)
		if err != nil {
			return st.withNote(note.Empty()), nil
		}
		if st.Note.Text == "" {
			return st.withNote(n.WithText(note.TemplateText(n.Name))), nil
		}
		// Mid-edit text wins over the template; only the binding changes.
		return st.withNote(n.WithText(st.Note.Text)), nil

	case DeviceWriteAcknowledged:
		return st, nil

	case MenuNewFile:
		return st, []Effect{CreateNewFile{}}

	case MenuOpenFile:
		return st, []Effect{OpenFilePicker{}}

	case MenuSaveFile:
		if st.Note.Bound() {
			return st, []Effect{OverwriteFile{Text: st.Note.Text}}
		}
		return st, []Effect{SaveFileAs{Text: st.Note.Text}}

	case MenuListCloudFiles:
		return st, []Effect{FetchCloudList{}}

	case MenuOpenCloudFile:
		return st, []Effect{FetchCloudFile{Name: ev.Name}}

	case MenuSaveCloudFile:
		return st, []Effect{PushCloudFile{Name: st.Note.Name, Text: st.Note.Text}}

	case MenuChangeTheme:
		return st.withTheme(ev.Theme), nil

	case MenuChangeLayout:
		// Read is reachable only through the preview toggle, never the menu.
		if ev.Mode == prefs.LayoutRead {
			return st, nil
		}
		return st.withLayout(ev.Mode), nil

	case RemoteListReceived:
		if ev.Err != nil {
			return st, nil
		}
		return st.withCloudFiles(ev.Files), nil

	case RemoteFileReceived:
		if ev.Err != nil {
			return st, nil
		}
		n := note.Note{Name: ev.Name, Text: ev.Text}
		return st.withNote(n), []Effect{PropagateTitle{Title: ev.Name}}

	case RemoteSaveAcknowledged:
		return st, nil

	case ToggleReadPreview:
		switch st.Prefs.LayoutMode {
		case prefs.LayoutFocus:
			return st.withLayout(prefs.LayoutRead), nil
		case prefs.LayoutRead:
			return st.withLayout(prefs.LayoutFocus), nil
		}
		return st, nil
	}

	return st, nil
}
