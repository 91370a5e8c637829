package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config contains the application shell settings. The dashboard component
// itself takes no configuration.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`
}

type LogConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error (default: info)
	Path       string `yaml:"path"`        // log file; the terminal belongs to the TUI
	MaxSizeMB  int    `yaml:"max_size_mb"` // rotate after this many megabytes (default: 10)
	MaxBackups int    `yaml:"max_backups"` // rotated files kept (default: 3)
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type UIConfig struct {
	AltScreen  bool `yaml:"alt_screen"` // full-screen mode (default: true)
	Mouse      bool `yaml:"mouse"`      // click-to-select tabs (default: true)
	Animations bool `yaml:"animations"` // spring-animated tab indicator (default: true)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Path:       filepath.Join(os.TempDir(), "kymera", "kymera.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
		UI: UIConfig{
			AltScreen:  true,
			Mouse:      true,
			Animations: true,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults; a named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithLogLevel returns a copy of the config with a different log level.
func (c Config) WithLogLevel(level string) Config {
	c.Log.Level = level
	return c
}

// WithLogPath returns a copy of the config writing logs to path.
func (c Config) WithLogPath(path string) Config {
	c.Log.Path = path
	return c
}

// WithMouse returns a copy of the config with mouse support enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.UI.Mouse = enabled
	return c
}

// WithAltScreen returns a copy of the config with the alternate screen enabled/disabled.
func (c Config) WithAltScreen(enabled bool) Config {
	c.UI.AltScreen = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return &ConfigError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}
	if c.Log.Path == "" {
		return &ConfigError{Field: "log.path", Message: "must not be empty"}
	}
	if c.Log.MaxSizeMB <= 0 {
		return &ConfigError{Field: "log.max_size_mb", Message: "must be positive"}
	}
	if c.Log.MaxBackups < 0 {
		return &ConfigError{Field: "log.max_backups", Message: "must not be negative"}
	}
	if c.Log.MaxAgeDays < 0 {
		return &ConfigError{Field: "log.max_age_days", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
