package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LogConfig configures the diagnostic logger. Logs go to standard error.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	CaseInsensitive bool      `yaml:"case_insensitive"`
	Interactive     bool      `yaml:"interactive"`
	Log             LogConfig `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *AppConfig) Validate() error {
	if !ValidLogLevel(c.Log.Level) {
		return fmt.Errorf("invalid log.level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level)
	}
	if !ValidLogFormat(c.Log.Format) {
		return fmt.Errorf("invalid log.format %q: must be 'text' or 'json'", c.Log.Format)
	}
	return nil
}

// ValidLogLevel reports whether level names a supported log level.
func ValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidLogFormat reports whether format names a supported log format.
func ValidLogFormat(format string) bool {
	return format == "text" || format == "json"
}

// LoadDefault tries ./minigrep.yaml first, then ~/.config/minigrep/config.yaml.
// If neither exists it returns defaults and an empty path.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "minigrep.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := DefaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return DefaultConfig(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultUserConfigPath returns ~/.config/minigrep/config.yaml.
func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml"), nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
