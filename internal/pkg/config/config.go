package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"uptime/internal/uptime"
)

// Config represents the main application configuration
type Config struct {
	AppName string       `yaml:"app_name"`
	Uptime  UptimeConfig `yaml:"uptime"`
	Logs    LogsConfig   `yaml:"logs"`
}

// UptimeConfig selects where the uptime is read from
type UptimeConfig struct {
	Source   string `yaml:"source"`    // auto, procfs, sysctl, clock or host
	ProcPath string `yaml:"proc_path"` // only used by the procfs source
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
	Format   string `yaml:"format"`
	Stderr   bool   `yaml:"stderr"`
}

// LoadConfig loads the configuration from the specified file path.
// Fields missing from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if c.Uptime.Source != "" && !slices.Contains(uptime.KnownSources, c.Uptime.Source) {
		return fmt.Errorf("unknown uptime source %q (expected one of %v)", c.Uptime.Source, uptime.KnownSources)
	}

	switch c.Logs.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logs.Format)
	}

	return nil
}

// GetDefaultConfig returns the default configuration.
// Logging is off so a plain invocation prints nothing but the uptime.
func GetDefaultConfig() *Config {
	return &Config{
		AppName: "uptime",
		Uptime: UptimeConfig{
			Source:   uptime.SourceAuto,
			ProcPath: uptime.DefaultProcPath,
		},
		Logs: LogsConfig{
			Enabled:  false,
			Level:    "info",
			FilePath: "",
			Format:   "console",
			Stderr:   true,
		},
	}
}
