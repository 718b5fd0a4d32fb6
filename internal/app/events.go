package app

import "github.com/inkwell-md/inkwell/internal/prefs"

// Event is anything the outside world can tell the core: user input, menu
// picks, and the results of previously requested I/O. Events double as
// Bubble Tea messages; the shell's Update loop forwards any tea.Msg that
// implements Event straight into Transition.
type Event interface{ isEvent() }

// EditText carries the full editor body after a keystroke.
type EditText struct{ Body string }

// SetLayout switches the layout directly, bypassing the menu path.
type SetLayout struct{ Mode prefs.LayoutMode }

// NoteLoadedFromDevice delivers a file-loaded bridge payload.
type NoteLoadedFromDevice struct{ Raw []byte }

// NewNoteBuiltFromTemplate delivers a file-built bridge payload.
type NewNoteBuiltFromTemplate struct{ Raw []byte }

// DeviceWriteAcknowledged delivers a file-written bridge result.
type DeviceWriteAcknowledged struct{ OK bool }

// Menu actions, one event per leaf the menu can carry.
type (
	MenuNewFile        struct{}
	MenuOpenFile       struct{}
	MenuSaveFile       struct{}
	MenuListCloudFiles struct{}
	MenuOpenCloudFile  struct{ Name string }
	MenuSaveCloudFile  struct{}
	MenuChangeTheme    struct{ Theme prefs.ColorTheme }
	MenuChangeLayout   struct{ Mode prefs.LayoutMode }
)

// RemoteListReceived delivers the outcome of a cloud list request. Err set
// means the list is unusable and the cached one stands.
type RemoteListReceived struct {
	Files []string
	Err   error
}

// RemoteFileReceived delivers the outcome of a cloud file fetch.
type RemoteFileReceived struct {
	Name string
	Text string
	Err  error
}

// RemoteSaveAcknowledged delivers the outcome of a cloud save.
type RemoteSaveAcknowledged struct{ Err error }

// ToggleReadPreview flips between Focus and Read. It is the only way into
// the Read layout.
type ToggleReadPreview struct{}

func (EditText) isEvent()                 {}
func (SetLayout) isEvent()                {}
func (NoteLoadedFromDevice) isEvent()     {}
func (NewNoteBuiltFromTemplate) isEvent() {}
func (DeviceWriteAcknowledged) isEvent()  {}
func (MenuNewFile) isEvent()              {}
func (MenuOpenFile) isEvent()             {}
func (MenuSaveFile) isEvent()             {}
func (MenuListCloudFiles) isEvent()       {}
func (MenuOpenCloudFile) isEvent()        {}
func (MenuSaveCloudFile) isEvent()        {}
func (MenuChangeTheme) isEvent()          {}
func (MenuChangeLayout) isEvent()         {}
func (RemoteListReceived) isEvent()       {}
func (RemoteFileReceived) isEvent()       {}
func (RemoteSaveAcknowledged) isEvent()   {}
func (ToggleReadPreview) isEvent()        {}
