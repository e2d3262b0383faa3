package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager. configFile overrides the
// XDG location when non-empty.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// URLSMITH_STORAGE_BACKEND, URLSMITH_TABS_SOURCE, ...
	v.SetEnvPrefix("URLSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "URLSMITH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind URLSMITH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "URLSMITH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind URLSMITH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.targetFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.targetFile(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// resolvePaths fills empty paths with their XDG defaults.
func resolvePaths(config *Config) error {
	resolve := func(dst *string, def func() (string, error), name string) error {
		if strings.TrimSpace(*dst) != "" {
			*dst = expandHome(strings.TrimSpace(*dst))
			return nil
		}
		p, err := def()
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", name, err)
		}
		*dst = p
		return nil
	}

	if err := resolve(&config.Storage.DatabasePath, GetDatabaseFile, "database path"); err != nil {
		return err
	}
	if err := resolve(&config.Storage.Directory, GetKVDirectory, "storage directory"); err != nil {
		return err
	}
	if err := resolve(&config.Tabs.StateFile, GetTabStateFile, "tab state file"); err != nil {
		return err
	}
	return resolve(&config.Logging.LogDir, GetLogDir, "log directory")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	config.Storage.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend))))
	if config.Storage.Backend == "" {
		config.Storage.Backend = defaults.Storage.Backend
	}

	config.Tabs.Source = TabSource(strings.ToLower(strings.TrimSpace(string(config.Tabs.Source))))
	if config.Tabs.Source == "" {
		config.Tabs.Source = defaults.Tabs.Source
	}
	config.Tabs.OpenCommand = strings.TrimSpace(config.Tabs.OpenCommand)

	config.Editor.DefaultProtocol = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(config.Editor.DefaultProtocol)), ":")
	if config.Editor.DefaultProtocol == "" {
		config.Editor.DefaultProtocol = defaults.Editor.DefaultProtocol
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch strings.ToLower(config.Appearance.ColorScheme) {
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	default:
		config.Appearance.ColorScheme = ColorSchemeDark
	}
	fillPalette(&config.Appearance.DarkPalette, defaults.Appearance.DarkPalette)
	fillPalette(&config.Appearance.LightPalette, defaults.Appearance.LightPalette)
}

// fillPalette replaces empty colors with the defaults so partial palettes work.
func fillPalette(p *ColorPalette, def ColorPalette) {
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	fill(&p.Background, def.Background)
	fill(&p.Surface, def.Surface)
	fill(&p.SurfaceVariant, def.SurfaceVariant)
	fill(&p.Text, def.Text)
	fill(&p.Muted, def.Muted)
	fill(&p.Accent, def.Accent)
	fill(&p.Border, def.Border)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.targetFile()
}

func (m *Manager) targetFile() string {
	if m.configFile != "" {
		return m.configFile
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return configFileName
	}
	return configFile
}

// createDefaultConfig writes the defaults to the config file location.
func (m *Manager) createDefaultConfig() error {
	configFile := m.targetFile()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	m.viper.SetConfigFile(configFile)

	// stdout carries command output (built URLs), so notices go to stderr.
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)

	return nil
}

// setDefaults sets default configuration values in Viper.
// Paths are left unset: they are resolved in Load so the file stays portable.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.database_path", "")
	m.viper.SetDefault("storage.directory", "")

	m.viper.SetDefault("tabs.source", string(defaults.Tabs.Source))
	m.viper.SetDefault("tabs.state_file", "")
	m.viper.SetDefault("tabs.open_command", defaults.Tabs.OpenCommand)

	m.viper.SetDefault("editor.default_protocol", defaults.Editor.DefaultProtocol)
	m.viper.SetDefault("editor.max_suggestions", defaults.Editor.MaxSuggestions)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", "")
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)

	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	setPaletteDefaults(m.viper, "appearance.dark_palette", defaults.Appearance.DarkPalette)
	setPaletteDefaults(m.viper, "appearance.light_palette", defaults.Appearance.LightPalette)
}

func setPaletteDefaults(v *viper.Viper, prefix string, p ColorPalette) {
	v.SetDefault(prefix+".background", p.Background)
	v.SetDefault(prefix+".surface", p.Surface)
	v.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	v.SetDefault(prefix+".text", p.Text)
	v.SetDefault(prefix+".muted", p.Muted)
	v.SetDefault(prefix+".accent", p.Accent)
	v.SetDefault(prefix+".border", p.Border)
}
