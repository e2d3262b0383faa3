// Package cli wires the urlsmith commands to their dependencies.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/domain/build"
	"github.com/bnema/urlsmith/internal/domain/entity"
	"github.com/bnema/urlsmith/internal/domain/repository"
	"github.com/bnema/urlsmith/internal/infrastructure/clipboard"
	"github.com/bnema/urlsmith/internal/infrastructure/config"
	"github.com/bnema/urlsmith/internal/infrastructure/persistence/file"
	"github.com/bnema/urlsmith/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/urlsmith/internal/infrastructure/tabs"
	"github.com/bnema/urlsmith/internal/logging"
)

// Options are the global command-line settings.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogLevel overrides the configured level when non-empty.
	LogLevel string
	// Ephemeral keeps the autocomplete history in memory only.
	Ephemeral bool
	// Interactive routes logs to the log file instead of stderr.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	KV        repository.KeyValueRepository
	Cache     *usecase.AutocompleteCacheUseCase
	Clipboard port.Clipboard

	// Out receives URLs printed by the static tab source on replace.
	Out io.Writer

	lazyDB     *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	logger := logging.New(logCfg)
	logCleanup := func() {}
	if opts.Interactive {
		fileLogger, cleanup, fileErr := logging.NewWithFile(logCfg, logging.FileConfig{
			Enabled: cfg.Logging.EnableFileLog,
			LogDir:  cfg.Logging.LogDir,
		})
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", fileErr)
		}
		logger, logCleanup = fileLogger, cleanup
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		Clipboard:     clipboard.New(),
		Out:           os.Stdout,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	switch {
	case opts.Ephemeral:
		app.KV = file.NewMemKVRepository()
	case cfg.Storage.Backend == config.StorageBackendFile:
		app.KV = file.NewKVRepository(afero.NewOsFs(), cfg.Storage.Directory)
	default:
		app.lazyDB = sqlite.NewLazyDB(cfg.Storage.DatabasePath)
		app.KV = sqlite.NewLazyKVRepository(app.lazyDB)
	}
	app.Cache = usecase.NewAutocompleteCacheUseCase(app.KV)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("storage", string(cfg.Storage.Backend)).
		Bool("ephemeral", opts.Ephemeral).
		Msg("app initialized")

	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.lazyDB != nil {
		return a.lazyDB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DefaultProtocol returns the configured scheme for host-only input.
func (a *App) DefaultProtocol() entity.Protocol {
	p, err := entity.ParseProtocol(a.Config.Editor.DefaultProtocol)
	if err != nil {
		return entity.DefaultProtocol
	}
	return p
}

// TabSource returns the tab provider and navigator for one invocation.
// A URL given on the command line always wins over the configured source.
func (a *App) TabSource(rawURL string) (port.TabProvider, port.TabNavigator) {
	if rawURL != "" || a.Config.Tabs.Source != config.TabSourceStateFile {
		p := tabs.NewStaticProvider(rawURL, a.DefaultProtocol(), a.Config.Tabs.OpenCommand, a.Out)
		return p, p
	}
	sf := tabs.NewStateFile(afero.NewOsFs(), a.Config.Tabs.StateFile)
	return sf, sf
}

// NewSession creates an editor session for rawURL, or for the configured
// tab source when rawURL is empty, plus the actions that act on its result.
func (a *App) NewSession(rawURL string) (*usecase.EditorSession, *usecase.URLActionsUseCase) {
	provider, navigator := a.TabSource(rawURL)
	session := usecase.NewEditorSession(
		usecase.NewResolveActiveTabUseCase(provider),
		a.Cache,
		a.Config.Editor.MaxSuggestions,
	)
	return session, usecase.NewURLActionsUseCase(navigator, a.Clipboard)
}
