package constants

const (
	Version = `0.1.0`

	ConfigFile     = `config`
	ConfigFileType = `yaml`
	ConfigDir      = `.inkwell`
	PrefsFile      = `prefs.json`
	StoreFile      = `files.sqlite3`
)
