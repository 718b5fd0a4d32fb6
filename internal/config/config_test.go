package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NotesDir != filepath.Join(home, "notes") {
		t.Errorf("NotesDir = %q", cfg.NotesDir)
	}
	if cfg.ServerURL != "http://localhost:6474" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.Listen != ":6474" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	home := t.TempDir()
	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := "notesdir: /srv/notes\nserver_url: http://files.example.com\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NotesDir != "/srv/notes" {
		t.Errorf("NotesDir = %q", cfg.NotesDir)
	}
	if cfg.ServerURL != "http://files.example.com" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	// Unset keys keep their defaults.
	if cfg.Listen != ":6474" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	home := t.TempDir()
	cfg := &Config{
		NotesDir:  "/srv/notes",
		ServerURL: "http://files.example.com",
		Listen:    ":9090",
		DBPath:    "/var/lib/inkwell/files.sqlite3",
	}

	if err := cfg.Write(home); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("loaded %+v, want %+v", got, cfg)
	}
}

func TestEnsureNotesDir(t *testing.T) {
	home := t.TempDir()
	cfg := &Config{NotesDir: filepath.Join(home, "notes", "deep")}

	if err := cfg.EnsureNotesDir(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	info, err := os.Stat(cfg.NotesDir)
	if err != nil || !info.IsDir() {
		t.Errorf("notes dir missing: %v", err)
	}
}
