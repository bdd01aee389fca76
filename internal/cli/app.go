// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/bnema/ssnfield/internal/application/port"
	"github.com/bnema/ssnfield/internal/application/usecase"
	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/domain/build"
	"github.com/bnema/ssnfield/internal/domain/ssn"
	"github.com/bnema/ssnfield/internal/infrastructure/clipboard"
	"github.com/bnema/ssnfield/internal/infrastructure/config"
	"github.com/bnema/ssnfield/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Mapping   ssn.OffsetMapping
	Clipboard port.Clipboard

	// Use cases
	FormatUC *usecase.FormatFieldUseCase

	cfgManager *config.Manager

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	mapping, err := ssn.ParseMapping(cfg.Field.CaretMapping)
	if err != nil {
		return nil, fmt.Errorf("field.caret_mapping: %w", err)
	}

	// Stderr belongs to the terminal UI; logs go to the configured file only.
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{Path: cfg.Logging.File, MaxSizeMB: cfg.Logging.MaxSizeMB},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: log file disabled: %v\n", err)
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config_file", configFile(mgr)).
		Str("caret_mapping", cfg.Field.CaretMapping).
		Bool("start_masked", cfg.Field.StartMasked).
		Msg("app initialized")

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(cfg),
		Mapping:    mapping,
		Clipboard:  clipboard.New(),
		FormatUC:   usecase.NewFormatFieldUseCase(mapping),
		cfgManager: mgr,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigManager returns the loaded config manager, or nil when the defaults
// are in use.
func (a *App) ConfigManager() *config.Manager {
	return a.cfgManager
}

// ConfigFile returns the path of the active config file.
func (a *App) ConfigFile() string {
	return configFile(a.cfgManager)
}

// WatchTheme reloads the theme whenever the config file changes.
// apply runs on the watcher goroutine.
func (a *App) WatchTheme(apply func(*styles.Theme)) {
	if a.cfgManager == nil {
		return
	}
	log := logging.FromContext(a.ctx)
	a.cfgManager.SetLogger(*log)

	a.cfgManager.OnConfigChange(func(cfg *config.Config) {
		log.Debug().Msg("config reloaded, rebuilding theme")
		apply(styles.NewTheme(cfg))
	})
	if err := a.cfgManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch failed")
	}
}

// loadConfig loads configuration from standard locations.
// Any failure falls back to the defaults.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
		return nil, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}

func configFile(mgr *config.Manager) string {
	if mgr != nil {
		if path := mgr.GetConfigFile(); path != "" {
			return path
		}
	}
	path, _ := config.GetConfigFile()
	return path
}
