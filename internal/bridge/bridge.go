// Package bridge is the local half of the editor's effect contract: device
// file I/O, preference persistence, and title/text propagation to the
// terminal. Each file operation answers with the same JSON payload shape the
// state machine decodes on the way back in.
package bridge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/inkwell-md/inkwell/internal/note"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

type Bridge struct {
	dir       string
	prefsPath string
}

func New(dir, prefsPath string) *Bridge {
	return &Bridge{dir: dir, prefsPath: prefsPath}
}

func (b *Bridge) Dir() string {
	return b.dir
}

var errEscapesDir = errors.New("name escapes the notes directory")

// resolve maps a note name onto a path inside the notes directory and
// rejects anything that would climb out of it.
func (b *Bridge) resolve(name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) ||
		filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: %q", errEscapesDir, name)
	}
	return filepath.Join(b.dir, cleaned), nil
}

func (b *Bridge) payload(name, path, text string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", name, err)
	}
	mod := info.ModTime()
	n := note.Note{Name: name, LastModified: &mod, Text: text}
	return n.Encode()
}

// BuildFile creates a fresh file under the notes directory and returns the
// file-built payload. Building an existing name loads what is already there
// instead of truncating it.
func (b *Bridge) BuildFile(name string) ([]byte, error) {
	if filepath.Ext(name) == "" {
		name += ".md"
	}
	path, err := b.resolve(name)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create note directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		f.Close()
		return b.payload(name, path, "")
	case errors.Is(err, fs.ErrExist):
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read existing note %q: %w", name, err)
		}
		return b.payload(name, path, string(raw))
	default:
		return nil, fmt.Errorf("failed to create note %q: %w", name, err)
	}
}

// LoadFile reads a device file and returns the file-loaded payload.
func (b *Bridge) LoadFile(name string) ([]byte, error) {
	path, err := b.resolve(name)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load note %q: %w", name, err)
	}
	return b.payload(name, path, string(raw))
}

// WriteFile covers both overwrite-file and save-file-as; the distinction
// lives in the state machine, not here. The returned bool is the
// file-written acknowledgement.
func (b *Bridge) WriteFile(name, text string) bool {
	path, err := b.resolve(name)
	if err != nil {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false
	}
	return os.WriteFile(path, []byte(text), 0o644) == nil
}

// ListFiles walks the notes directory and returns the markdown files in it,
// as slash-separated names relative to the directory.
func (b *Bridge) ListFiles() ([]string, error) {
	var names []string
	err := filepath.WalkDir(b.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != b.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(b.dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk notes directory: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// PersistPreferences stores the record on the device.
func (b *Bridge) PersistPreferences(p prefs.Preferences) error {
	return prefs.Save(b.prefsPath, p)
}

// PropagateTitle pushes a new title to the terminal window.
func (b *Bridge) PropagateTitle(title string) {
	termenv.SetWindowTitle(title)
}

// PropagateText forwards live editor text. The terminal has no separate
// text consumer, so the note's current heading doubles as the live title.
func (b *Bridge) PropagateText(text string) {
	n := note.Note{Name: note.DefaultName, Text: text}
	termenv.SetWindowTitle(n.Title())
}
