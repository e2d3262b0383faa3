// Package config loads, validates and watches the urlsmith configuration.
package config

// Config is the complete urlsmith configuration.
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage" toml:"storage"`
	Tabs       TabsConfig       `mapstructure:"tabs" yaml:"tabs" toml:"tabs"`
	Editor     EditorConfig     `mapstructure:"editor" yaml:"editor" toml:"editor"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// StorageBackend selects the key-value store holding the autocomplete history.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendFile   StorageBackend = "file"
)

// StorageConfig holds persistence settings.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend"`
	// DatabasePath is the SQLite file; empty means $XDG_DATA_HOME/urlsmith/urlsmith.sqlite.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path" toml:"database_path"`
	// Directory holds one file per key for the file backend; empty means $XDG_DATA_HOME/urlsmith/kv.
	Directory string `mapstructure:"directory" yaml:"directory" toml:"directory"`
}

// TabSource selects where the active tab comes from when no URL is given.
type TabSource string

const (
	// TabSourceStatic only accepts a URL on the command line.
	TabSourceStatic TabSource = "static"
	// TabSourceStateFile reads windows and tabs from a JSON file kept by a browser bridge.
	TabSourceStateFile TabSource = "statefile"
)

// TabsConfig holds tab lookup and navigation settings.
type TabsConfig struct {
	Source    TabSource `mapstructure:"source" yaml:"source" toml:"source"`
	StateFile string    `mapstructure:"state_file" yaml:"state_file" toml:"state_file"`
	// OpenCommand opens a URL in a new tab for the static source; the URL is appended.
	OpenCommand string `mapstructure:"open_command" yaml:"open_command" toml:"open_command"`
}

// EditorConfig holds editor behavior.
type EditorConfig struct {
	// DefaultProtocol is prepended to scheme-less URLs given on the command line.
	DefaultProtocol string `mapstructure:"default_protocol" yaml:"default_protocol" toml:"default_protocol"`
	MaxSuggestions  int    `mapstructure:"max_suggestions" yaml:"max_suggestions" toml:"max_suggestions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// File output, used by the interactive editor so logs don't draw over the TUI.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
}

// AppearanceConfig holds TUI colors.
type AppearanceConfig struct {
	ColorScheme  string       `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette"`
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette"`
}

// Color schemes.
const (
	ColorSchemeDark  = "dark"
	ColorSchemeLight = "light"
)

// ColorPalette is a set of hex colors for the TUI.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// ActivePalette returns the palette selected by ColorScheme.
func (a AppearanceConfig) ActivePalette() ColorPalette {
	if a.ColorScheme == ColorSchemeLight {
		return a.LightPalette
	}
	return a.DarkPalette
}
