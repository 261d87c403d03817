package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFile(l.config.GetConfigFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFile merges a YAML file into the configuration. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("failed to parse %s: %v", path, err)}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DBDir      *string
	DBFilename *string

	// Timer overrides
	DefaultMinutes   *float64
	ExtensionMinutes *float64

	// Notification overrides
	NotifyEnabled *bool
	NotifyServer  *string
	NotifyTopic   *string

	// Display overrides
	Theme *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Storage.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Storage.Filename = *overrides.DBFilename
	}

	if overrides.DefaultMinutes != nil {
		config.Timer.DefaultMinutes = *overrides.DefaultMinutes
	}
	if overrides.ExtensionMinutes != nil {
		config.Timer.ExtensionMinutes = *overrides.ExtensionMinutes
	}

	if overrides.NotifyEnabled != nil {
		config.Notification.Enabled = *overrides.NotifyEnabled
	}
	if overrides.NotifyServer != nil {
		config.Notification.Server = *overrides.NotifyServer
	}
	if overrides.NotifyTopic != nil {
		config.Notification.Topic = *overrides.NotifyTopic
	}

	if overrides.Theme != nil {
		config.Display.Theme = *overrides.Theme
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseFloatWithFallback parses a float string with a fallback value
func ParseFloatWithFallback(s string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
