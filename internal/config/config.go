package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"productivity-clock/internal/validation"
)

// Config holds all configuration options for the productivity clock
type Config struct {
	Storage      StorageConfig      `yaml:"storage"`
	Timer        TimerConfig        `yaml:"timer"`
	Tasks        TasksConfig        `yaml:"tasks"`
	Notification NotificationConfig `yaml:"notification"`
	Display      DisplayConfig      `yaml:"display"`
	Application  ApplicationConfig  `yaml:"application"`
}

// StorageConfig holds snapshot database configuration
type StorageConfig struct {
	Dir            string        `yaml:"dir" env:"PC_DB_DIR"`
	Filename       string        `yaml:"filename" env:"PC_DB_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"PC_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"PC_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"PC_DB_DIR_PERMISSIONS"`
}

// TimerConfig holds countdown rules
type TimerConfig struct {
	DefaultMinutes     float64       `yaml:"default_minutes" env:"PC_TIMER_DEFAULT_MINUTES"`
	MinMinutes         float64       `yaml:"min_minutes" env:"PC_TIMER_MIN_MINUTES"`
	MaxMinutes         float64       `yaml:"max_minutes" env:"PC_TIMER_MAX_MINUTES"`
	ExtensionMinutes   float64       `yaml:"extension_minutes" env:"PC_TIMER_EXTENSION_MINUTES"`
	ExtensionWarnAfter int           `yaml:"extension_warn_after" env:"PC_TIMER_EXTENSION_WARN_AFTER"`
	DriftFloor         time.Duration `yaml:"drift_floor" env:"PC_TIMER_DRIFT_FLOOR"`
}

// TasksConfig holds task list rules
type TasksConfig struct {
	TextMaxLength int `yaml:"text_max_length" env:"PC_TASK_TEXT_MAX"`
}

// NotificationConfig holds ntfy push settings
type NotificationConfig struct {
	Enabled      bool          `yaml:"enabled" env:"PC_NOTIFY_ENABLED"`
	Server       string        `yaml:"server" env:"PC_NOTIFY_SERVER"`
	Topic        string        `yaml:"topic" env:"PC_NOTIFY_TOPIC"`
	Message      string        `yaml:"message" env:"PC_NOTIFY_MESSAGE"`
	Priority     string        `yaml:"priority" env:"PC_NOTIFY_PRIORITY"`
	Tags         string        `yaml:"tags" env:"PC_NOTIFY_TAGS"`
	Timeout      time.Duration `yaml:"timeout" env:"PC_NOTIFY_TIMEOUT"`
	MaxAttempts  int           `yaml:"max_attempts" env:"PC_NOTIFY_MAX_ATTEMPTS"`
	InitialDelay time.Duration `yaml:"initial_delay" env:"PC_NOTIFY_INITIAL_DELAY"`
}

// DisplayConfig holds presentation defaults
type DisplayConfig struct {
	// Theme is used until a preference has been saved: auto, light or dark.
	Theme string `yaml:"theme" env:"PC_DISPLAY_THEME"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"PC_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"PC_APP_VERBOSE"`
}

// Theme values accepted by DisplayConfig.Theme
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".pc")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDBDir,
			Filename:       "clock.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Timer: TimerConfig{
			DefaultMinutes:     25,
			MinMinutes:         1,
			MaxMinutes:         9999,
			ExtensionMinutes:   5,
			ExtensionWarnAfter: 3,
			DriftFloor:         time.Millisecond,
		},
		Tasks: TasksConfig{
			TextMaxLength: 500,
		},
		Notification: NotificationConfig{
			Enabled:      false,
			Server:       "https://ntfy.sh",
			Message:      "This is a notification from your Productivy Clock",
			Priority:     "default",
			Tags:         "stopwatch",
			Timeout:      10 * time.Second,
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
		},
		Display: DisplayConfig{
			Theme: ThemeAuto,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetConfigFilePath returns the YAML file consulted by the loader
func (c *Config) GetConfigFilePath() string {
	if path := os.Getenv("PC_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(c.Storage.Dir, "config.yaml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("PC_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("PC_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("PC_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := os.Getenv("PC_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("PC_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Timer configuration
	if v := os.Getenv("PC_TIMER_DEFAULT_MINUTES"); v != "" {
		c.Timer.DefaultMinutes = ParseFloatWithFallback(v, c.Timer.DefaultMinutes)
	}
	if v := os.Getenv("PC_TIMER_MIN_MINUTES"); v != "" {
		c.Timer.MinMinutes = ParseFloatWithFallback(v, c.Timer.MinMinutes)
	}
	if v := os.Getenv("PC_TIMER_MAX_MINUTES"); v != "" {
		c.Timer.MaxMinutes = ParseFloatWithFallback(v, c.Timer.MaxMinutes)
	}
	if v := os.Getenv("PC_TIMER_EXTENSION_MINUTES"); v != "" {
		c.Timer.ExtensionMinutes = ParseFloatWithFallback(v, c.Timer.ExtensionMinutes)
	}
	if v := os.Getenv("PC_TIMER_EXTENSION_WARN_AFTER"); v != "" {
		c.Timer.ExtensionWarnAfter = ParseIntWithFallback(v, c.Timer.ExtensionWarnAfter)
	}
	if v := os.Getenv("PC_TIMER_DRIFT_FLOOR"); v != "" {
		c.Timer.DriftFloor = ParseDurationWithFallback(v, c.Timer.DriftFloor)
	}

	// Task configuration
	if v := os.Getenv("PC_TASK_TEXT_MAX"); v != "" {
		c.Tasks.TextMaxLength = ParseIntWithFallback(v, c.Tasks.TextMaxLength)
	}

	// Notification configuration
	if v := os.Getenv("PC_NOTIFY_ENABLED"); v != "" {
		c.Notification.Enabled = ParseBoolWithFallback(v, c.Notification.Enabled)
	}
	if v := os.Getenv("PC_NOTIFY_SERVER"); v != "" {
		c.Notification.Server = v
	}
	if v := os.Getenv("PC_NOTIFY_TOPIC"); v != "" {
		c.Notification.Topic = v
	}
	if v := os.Getenv("PC_NOTIFY_MESSAGE"); v != "" {
		c.Notification.Message = v
	}
	if v := os.Getenv("PC_NOTIFY_PRIORITY"); v != "" {
		c.Notification.Priority = v
	}
	if v := os.Getenv("PC_NOTIFY_TAGS"); v != "" {
		c.Notification.Tags = v
	}
	if v := os.Getenv("PC_NOTIFY_TIMEOUT"); v != "" {
		c.Notification.Timeout = ParseDurationWithFallback(v, c.Notification.Timeout)
	}
	if v := os.Getenv("PC_NOTIFY_MAX_ATTEMPTS"); v != "" {
		c.Notification.MaxAttempts = ParseIntWithFallback(v, c.Notification.MaxAttempts)
	}
	if v := os.Getenv("PC_NOTIFY_INITIAL_DELAY"); v != "" {
		c.Notification.InitialDelay = ParseDurationWithFallback(v, c.Notification.InitialDelay)
	}

	// Display configuration
	if v := os.Getenv("PC_DISPLAY_THEME"); v != "" {
		c.Display.Theme = strings.ToLower(v)
	}

	// Application configuration
	if timeout := os.Getenv("PC_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("PC_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate timer configuration
	if c.Timer.MinMinutes <= 0 {
		return &ConfigError{Field: "timer.min_minutes", Message: "minimum minutes must be positive"}
	}
	if c.Timer.MaxMinutes < c.Timer.MinMinutes {
		return &ConfigError{Field: "timer.max_minutes", Message: "maximum minutes must not be below minimum minutes"}
	}
	lengths := validation.NewTimerValidator(c.Timer.MinMinutes, c.Timer.MaxMinutes)
	if err := lengths.ValidateMinutes(c.Timer.DefaultMinutes); err != nil {
		return &ConfigError{Field: "timer.default_minutes", Message: "default minutes must be within the configured bounds"}
	}
	if err := lengths.ValidateMinutes(c.Timer.ExtensionMinutes); err != nil {
		return &ConfigError{Field: "timer.extension_minutes", Message: "extension minutes must be within the configured bounds"}
	}
	if c.Timer.ExtensionWarnAfter < 0 {
		return &ConfigError{Field: "timer.extension_warn_after", Message: "extension warning threshold cannot be negative"}
	}
	if c.Timer.DriftFloor <= 0 || c.Timer.DriftFloor >= time.Second {
		return &ConfigError{Field: "timer.drift_floor", Message: "drift floor must be positive and shorter than one tick"}
	}

	// Validate task configuration
	if c.Tasks.TextMaxLength < 1 {
		return &ConfigError{Field: "tasks.text_max_length", Message: "task text maximum length must be at least 1"}
	}

	// Validate notification configuration
	if c.Notification.Enabled && c.Notification.Topic == "" {
		return &ConfigError{Field: "notification.topic", Message: "topic is required when notifications are enabled"}
	}
	if c.Notification.Timeout <= 0 {
		return &ConfigError{Field: "notification.timeout", Message: "notification timeout must be positive"}
	}
	if c.Notification.MaxAttempts < 1 {
		return &ConfigError{Field: "notification.max_attempts", Message: "notification attempts must be at least 1"}
	}

	// Validate display configuration
	switch c.Display.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return &ConfigError{Field: "display.theme", Message: "theme must be one of auto, light, dark"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
