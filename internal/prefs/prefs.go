// Package prefs holds the persisted subset of UI state: the color theme and
// the layout mode. Nothing else survives a session.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type ColorTheme string

const (
	ThemeWhite ColorTheme = "White"
	ThemeDark  ColorTheme = "Dark"
)

type LayoutMode string

const (
	LayoutWrite LayoutMode = "Write"
	LayoutFocus LayoutMode = "Focus"
	LayoutRead  LayoutMode = "Read"
)

// Preferences is the stable external schema. Field names are part of the
// persisted record and must not change.
type Preferences struct {
	ColorTheme ColorTheme `json:"colorTheme"`
	LayoutMode LayoutMode `json:"layoutMode"`
}

func Default() Preferences {
	return Preferences{
		ColorTheme: ThemeWhite,
		LayoutMode: LayoutWrite,
	}
}

func validTheme(t ColorTheme) bool {
	return t == ThemeWhite || t == ThemeDark
}

func validLayout(m LayoutMode) bool {
	return m == LayoutWrite || m == LayoutFocus || m == LayoutRead
}

// Decode parses a persisted preference record. Any malformed payload, missing
// field, or out-of-range value degrades to Default — a bad record must never
// take the editor down.
func Decode(raw []byte) Preferences {
	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return Default()
	}
	if !validTheme(p.ColorTheme) || !validLayout(p.LayoutMode) {
		return Default()
	}
	return p
}

func (p Preferences) Encode() []byte {
	raw, err := json.Marshal(p)
	if err != nil {
		// Preferences is a pair of strings; Marshal cannot fail on it.
		panic(fmt.Sprintf("prefs: encode: %v", err))
	}
	return raw
}

// Load reads preferences from path, falling back to Default when the file is
// absent or unreadable.
func Load(path string) Preferences {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	return Decode(raw)
}

// Save writes the record at path, creating parent directories as needed.
// Saving the same value repeatedly produces byte-identical records.
func Save(path string, p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := os.WriteFile(path, p.Encode(), 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
