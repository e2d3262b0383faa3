package config

// Default configuration constants
const (
	defaultStorageBackend  = StorageBackendSQLite
	defaultTabSource       = TabSourceStatic
	defaultOpenCommand     = "xdg-open"
	defaultProtocol        = "https"
	defaultMaxSuggestions  = 8 // values shown under a focused field
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultColorScheme     = ColorSchemeDark
	defaultStateFileName   = "tabs.json"
	defaultKVDirectoryName = "kv"
)

// DefaultConfig returns the default configuration.
// Paths left empty are resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: defaultStorageBackend,
		},
		Tabs: TabsConfig{
			Source:      defaultTabSource,
			OpenCommand: defaultOpenCommand,
		},
		Editor: EditorConfig{
			DefaultProtocol: defaultProtocol,
			MaxSuggestions:  defaultMaxSuggestions,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
		},
		Appearance: AppearanceConfig{
			ColorScheme: defaultColorScheme,
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#1a1a1b",
				SurfaceVariant: "#2d2d2d",
				Text:           "#ffffff",
				Muted:          "#909090",
				Accent:         "#4ade80",
				Border:         "#333333",
			},
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f0f0f0",
				SurfaceVariant: "#e0e0e0",
				Text:           "#1a1a1a",
				Muted:          "#6b6b6b",
				Accent:         "#16a34a",
				Border:         "#d0d0d0",
			},
		},
	}
}
