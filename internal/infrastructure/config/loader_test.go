package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base directory into a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "sqlite", mgr.viper.GetString("storage.backend"))
	assert.Equal(t, "static", mgr.viper.GetString("tabs.source"))
	assert.Equal(t, "xdg-open", mgr.viper.GetString("tabs.open_command"))
	assert.Equal(t, 8, mgr.viper.GetInt("editor.max_suggestions"))
	assert.Equal(t, "#4ade80", mgr.viper.GetString("appearance.dark_palette.accent"))
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "urlsmith", "config.toml")
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, StorageBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(root, "data", "urlsmith", "urlsmith.sqlite"), cfg.Storage.DatabasePath)
	assert.Equal(t, filepath.Join(root, "data", "urlsmith", "kv"), cfg.Storage.Directory)
	assert.Equal(t, filepath.Join(root, "state", "urlsmith", "tabs.json"), cfg.Tabs.StateFile)
	assert.Equal(t, filepath.Join(root, "state", "urlsmith", "logs"), cfg.Logging.LogDir)
	assert.Equal(t, "https", cfg.Editor.DefaultProtocol)

	// Paths stay unresolved in the file so it survives a moved home directory.
	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), root)
}

func TestManager_Load_ExplicitFile(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[storage]
backend = "FILE"
directory = "/tmp/urlsmith-kv"

[tabs]
source = "statefile"
state_file = "/run/user/1000/tabs.json"

[editor]
default_protocol = "HTTP:"
max_suggestions = 3

[appearance]
color_scheme = "light"

[appearance.light_palette]
accent = "#ff0000"
`), 0o600))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, StorageBackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/urlsmith-kv", cfg.Storage.Directory)
	assert.Equal(t, TabSourceStateFile, cfg.Tabs.Source)
	assert.Equal(t, "/run/user/1000/tabs.json", cfg.Tabs.StateFile)
	assert.Equal(t, "http", cfg.Editor.DefaultProtocol)
	assert.Equal(t, 3, cfg.Editor.MaxSuggestions)
	assert.Equal(t, "#ff0000", cfg.Appearance.ActivePalette().Accent)
	assert.Equal(t, "#fafafa", cfg.Appearance.ActivePalette().Background)
}

func TestManager_Load_MissingExplicitFileIsCreated(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "nested", "urlsmith.toml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())
}

func TestManager_Load_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("URLSMITH_LOG_LEVEL", "debug")
	t.Setenv("URLSMITH_STORAGE_BACKEND", "file")

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, StorageBackendFile, cfg.Storage.Backend)
}

func TestManager_Load_InvalidValues(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "bad.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[storage]
backend = "redis"

[editor]
default_protocol = "ftp"
max_suggestions = 0
`), 0o600))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
	assert.Contains(t, err.Error(), "editor.default_protocol")
	assert.Contains(t, err.Error(), "editor.max_suggestions")
}

func TestManager_Load_MalformedTOML(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "broken.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[storage\nbackend="), 0o600))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_Get_BeforeLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_Watch_ReloadsAndNotifies(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "watched.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[editor]\nmax_suggestions = 4\n"), 0o600))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var mu sync.Mutex
	var seen []int
	mgr.OnConfigChange(func(c *Config) {
		mu.Lock()
		seen = append(seen, c.Editor.MaxSuggestions)
		mu.Unlock()
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	require.NoError(t, os.WriteFile(configFile, []byte("[editor]\nmax_suggestions = 12\n"), 0o600))

	// A single write may surface as several events; wait for the final content.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0 && seen[len(seen)-1] == 12
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 12, mgr.Get().Editor.MaxSuggestions)
}

func TestMarshal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DatabasePath = "/data/urlsmith.sqlite"

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[storage]")
	assert.Contains(t, string(data), "[appearance.dark_palette]")

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)

	_, err = Marshal(nil)
	assert.Error(t, err)
}
