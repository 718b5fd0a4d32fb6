package app

import "github.com/inkwell-md/inkwell/internal/prefs"

// Effect describes an intended side effect. The core emits effects instead
// of performing I/O; the shell executes them and re-injects results as new
// events. When a transition emits more than one effect, the slice order is
// the order they must be issued in.
type Effect interface{ isEffect() }

// CreateNewFile asks the bridge to build a fresh device file.
type CreateNewFile struct{}

// OpenFilePicker asks the bridge to offer a file choice to the user.
type OpenFilePicker struct{}

// OverwriteFile writes the note text to the file it is bound to.
type OverwriteFile struct{ Text string }

// SaveFileAs writes the note text to a file the user names.
type SaveFileAs struct{ Text string }

// PropagateText forwards the live editor text to external consumers.
type PropagateText struct{ Text string }

// PropagateTitle forwards a new display title to external consumers.
type PropagateTitle struct{ Title string }

// PersistPreferences stores the given record on the device.
type PersistPreferences struct{ Prefs prefs.Preferences }

// FetchCloudList requests GET /files from the note store.
type FetchCloudList struct{}

// FetchCloudFile requests GET /files/{name} from the note store.
type FetchCloudFile struct{ Name string }

// PushCloudFile requests POST /files/{name} with the note text.
type PushCloudFile struct {
	Name string
	Text string
}

func (CreateNewFile) isEffect()      {}
func (OpenFilePicker) isEffect()     {}
func (OverwriteFile) isEffect()      {}
func (SaveFileAs) isEffect()         {}
func (PropagateText) isEffect()      {}
func (PropagateTitle) isEffect()     {}
func (PersistPreferences) isEffect() {}
func (FetchCloudList) isEffect()     {}
func (FetchCloudFile) isEffect()     {}
func (PushCloudFile) isEffect()      {}
