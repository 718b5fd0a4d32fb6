// Package config loads the application configuration: where notes live on
// disk, where the note store service is, and how the service itself should
// run. Preferences (theme, layout) are not configuration; they live in
// internal/prefs and are written by the editor itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inkwell-md/inkwell/internal/constants"
)

type Config struct {
	NotesDir  string `yaml:"notesdir"   json:"notes_dir"   mapstructure:"notesdir"`
	ServerURL string `yaml:"server_url" json:"server_url"  mapstructure:"server_url"`
	Listen    string `yaml:"listen"     json:"listen"      mapstructure:"listen"`
	DBPath    string `yaml:"db_path"    json:"db_path"     mapstructure:"db_path"`
}

const (
	defaultServerURL = "http://localhost:6474"
	defaultListen    = ":6474"
)

func GetConfigPath(home string) string {
	return filepath.Join(
		home,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

func GetPrefsPath(home string) string {
	return filepath.Join(home, constants.ConfigDir, constants.PrefsFile)
}

// Load reads the config file under home, filling in defaults for anything
// missing. A missing file is not an error; the defaults are a complete
// working configuration.
func Load(home string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(GetConfigPath(home))
	v.SetConfigType(constants.ConfigFileType)

	v.SetDefault("notesdir", filepath.Join(home, "notes"))
	v.SetDefault("server_url", defaultServerURL)
	v.SetDefault("listen", defaultListen)
	v.SetDefault("db_path", filepath.Join(home, constants.ConfigDir, constants.StoreFile))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Write saves the config file under home, creating the config directory as
// needed. Load never writes; only an explicit save does.
func (c *Config) Write(home string) error {
	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// EnsureNotesDir creates the notes directory if it does not exist yet.
func (c *Config) EnsureNotesDir() error {
	if err := os.MkdirAll(c.NotesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	return nil
}
