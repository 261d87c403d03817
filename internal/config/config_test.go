package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "clock.db", cfg.Storage.Filename)
	assert.True(t, strings.HasSuffix(cfg.Storage.Dir, ".pc"))
	assert.Equal(t, 25.0, cfg.Timer.DefaultMinutes)
	assert.Equal(t, 1.0, cfg.Timer.MinMinutes)
	assert.Equal(t, 9999.0, cfg.Timer.MaxMinutes)
	assert.Equal(t, 5.0, cfg.Timer.ExtensionMinutes)
	assert.Equal(t, 3, cfg.Timer.ExtensionWarnAfter)
	assert.Equal(t, time.Millisecond, cfg.Timer.DriftFloor)
	assert.Equal(t, "https://ntfy.sh", cfg.Notification.Server)
	assert.Equal(t, "This is a notification from your Productivy Clock", cfg.Notification.Message)
	assert.Equal(t, "stopwatch", cfg.Notification.Tags)
	assert.Equal(t, ThemeAuto, cfg.Display.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("PC_DB_DIR", "/tmp/pc-test")
	t.Setenv("PC_DB_FILENAME", "other.db")
	t.Setenv("PC_DB_DIR_PERMISSIONS", "0700")
	t.Setenv("PC_TIMER_DEFAULT_MINUTES", "50")
	t.Setenv("PC_TIMER_EXTENSION_MINUTES", "10")
	t.Setenv("PC_TIMER_DRIFT_FLOOR", "5ms")
	t.Setenv("PC_NOTIFY_ENABLED", "true")
	t.Setenv("PC_NOTIFY_TOPIC", "focus")
	t.Setenv("PC_NOTIFY_TIMEOUT", "not-a-duration")
	t.Setenv("PC_DISPLAY_THEME", "DARK")
	t.Setenv("PC_APP_VERBOSE", "1")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/pc-test/other.db", cfg.GetDatabasePath())
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, 50.0, cfg.Timer.DefaultMinutes)
	assert.Equal(t, 10.0, cfg.Timer.ExtensionMinutes)
	assert.Equal(t, 5*time.Millisecond, cfg.Timer.DriftFloor)
	assert.True(t, cfg.Notification.Enabled)
	assert.Equal(t, "focus", cfg.Notification.Topic)
	assert.Equal(t, 10*time.Second, cfg.Notification.Timeout, "unparseable values keep the default")
	assert.Equal(t, ThemeDark, cfg.Display.Theme)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
		{"zero query timeout", func(c *Config) { c.Storage.QueryTimeout = 0 }, "storage.query_timeout"},
		{"zero min minutes", func(c *Config) { c.Timer.MinMinutes = 0 }, "timer.min_minutes"},
		{"max below min", func(c *Config) { c.Timer.MaxMinutes = 0.5 }, "timer.max_minutes"},
		{"default out of range", func(c *Config) { c.Timer.DefaultMinutes = 10000 }, "timer.default_minutes"},
		{"zero extension", func(c *Config) { c.Timer.ExtensionMinutes = 0 }, "timer.extension_minutes"},
		{"extension below minimum", func(c *Config) { c.Timer.ExtensionMinutes = 0.5 }, "timer.extension_minutes"},
		{"extension above maximum", func(c *Config) { c.Timer.ExtensionMinutes = 10000 }, "timer.extension_minutes"},
		{"extension at minimum", func(c *Config) { c.Timer.ExtensionMinutes = 1 }, ""},
		{"negative warning threshold", func(c *Config) { c.Timer.ExtensionWarnAfter = -1 }, "timer.extension_warn_after"},
		{"zero drift floor", func(c *Config) { c.Timer.DriftFloor = 0 }, "timer.drift_floor"},
		{"drift floor of a full tick", func(c *Config) { c.Timer.DriftFloor = time.Second }, "timer.drift_floor"},
		{"task length zero", func(c *Config) { c.Tasks.TextMaxLength = 0 }, "tasks.text_max_length"},
		{"enabled without topic", func(c *Config) { c.Notification.Enabled = true }, "notification.topic"},
		{"zero attempts", func(c *Config) { c.Notification.MaxAttempts = 0 }, "notification.max_attempts"},
		{"unknown theme", func(c *Config) { c.Display.Theme = "sepia" }, "display.theme"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.wantField, configErr.Field)
		})
	}
}
