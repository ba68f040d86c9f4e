package app

import (
	"errors"
	"fmt"
	"io"

	"uptime/internal/pkg/config"
	"uptime/internal/pkg/logger"
	"uptime/internal/uptime"
)

// Application represents the main application
type Application struct {
	configPath string
	config     *config.Config
	provider   uptime.Provider
}

// New creates a new application instance. An empty configPath means the
// built-in defaults are used and no file is read.
func New(configPath string) *Application {
	return &Application{
		configPath: configPath,
	}
}

// Initialize loads configuration and initializes components
func (a *Application) Initialize() error {
	cfg := config.GetDefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	a.config = cfg

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	source := uptime.ResolveSource(cfg.Uptime.Source)
	provider, err := uptime.NewProvider(source, cfg.Uptime.ProcPath)
	if err != nil {
		return fmt.Errorf("failed to select uptime source: %w", err)
	}
	a.provider = provider

	logger.Debug("Application initialized",
		logger.String("source", source),
		logger.String("config", a.configPath))
	return nil
}

// SetProvider replaces the uptime provider chosen during Initialize
func (a *Application) SetProvider(p uptime.Provider) {
	a.provider = p
}

// GetConfig returns the application configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// Run queries the uptime once and writes it to w without a trailing newline
func (a *Application) Run(w io.Writer) error {
	if a.provider == nil {
		return errors.New("application not initialized")
	}

	seconds, err := a.provider.Uptime()
	if err != nil {
		logger.Error("Failed to query system uptime", logger.Err(err))
		return err
	}
	logger.Debug("System uptime queried", logger.Uint64("seconds", uint64(seconds)))

	if _, err := io.WriteString(w, uptime.FormatUptime(seconds)); err != nil {
		return fmt.Errorf("failed to write uptime: %w", err)
	}
	return nil
}

// Shutdown flushes buffered logs
func (a *Application) Shutdown() {
	// Sync on a terminal stderr reports EINVAL; nothing useful to do with it
	_ = logger.Sync()
}
