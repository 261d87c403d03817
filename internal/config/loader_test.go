package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoader_Load_FileThenEnvironment(t *testing.T) {
	path := writeConfigFile(t, `
timer:
  default_minutes: 45
  extension_minutes: 3
notification:
  enabled: true
  topic: from_file
  priority: high
display:
  theme: light
`)
	t.Setenv("PC_CONFIG", path)
	t.Setenv("PC_NOTIFY_TOPIC", "from_env")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 45.0, cfg.Timer.DefaultMinutes)
	assert.Equal(t, 3.0, cfg.Timer.ExtensionMinutes)
	assert.Equal(t, 9999.0, cfg.Timer.MaxMinutes, "unset keys keep defaults")
	assert.True(t, cfg.Notification.Enabled)
	assert.Equal(t, "from_env", cfg.Notification.Topic, "environment beats the file")
	assert.Equal(t, "high", cfg.Notification.Priority)
	assert.Equal(t, ThemeLight, cfg.Display.Theme)
}

func TestLoader_Load_DurationsFromFile(t *testing.T) {
	path := writeConfigFile(t, `
timer:
  drift_floor: 10ms
notification:
  timeout: 3s
`)
	t.Setenv("PC_CONFIG", path)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Timer.DriftFloor)
	assert.Equal(t, 3*time.Second, cfg.Notification.Timeout)
}

func TestLoader_Load_MissingFileIsFine(t *testing.T) {
	t.Setenv("PC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.Timer.DefaultMinutes)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name           string
		contents       string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml",
			contents: "timer: [unclosed",
			errorAssertion: func(t *testing.T, err error) {
				var configErr *ConfigError
				require.ErrorAs(t, err, &configErr)
				assert.Equal(t, "file", configErr.Field)
			},
		},
		{
			name:     "invalid value",
			contents: "timer:\n  default_minutes: 0\n",
			errorAssertion: func(t *testing.T, err error) {
				var configErr *ConfigError
				require.ErrorAs(t, err, &configErr)
				assert.Equal(t, "timer.default_minutes", configErr.Field)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PC_CONFIG", writeConfigFile(t, tt.contents))

			_, err := NewLoader().Load()

			require.Error(t, err)
			tt.errorAssertion(t, err)
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Setenv("PC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	dir := "/tmp/override"
	minutes := 15.0
	enabled := true
	topic := "cli_topic"
	theme := ThemeDark
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DBDir:          &dir,
		DefaultMinutes: &minutes,
		NotifyEnabled:  &enabled,
		NotifyTopic:    &topic,
		Theme:          &theme,
		Verbose:        &verbose,
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override", cfg.Storage.Dir)
	assert.Equal(t, 15.0, cfg.Timer.DefaultMinutes)
	assert.True(t, cfg.Notification.Enabled)
	assert.Equal(t, "cli_topic", cfg.Notification.Topic)
	assert.Equal(t, ThemeDark, cfg.Display.Theme)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_LoadWithOverrides_Revalidates(t *testing.T) {
	t.Setenv("PC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	enabled := true

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{NotifyEnabled: &enabled})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "notification.topic", configErr.Field)
}

func TestLoader_Load_RejectsFractionalExtensionFromEnvironment(t *testing.T) {
	t.Setenv("PC_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PC_TIMER_EXTENSION_MINUTES", "0.5")

	_, err := NewLoader().Load()

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "timer.extension_minutes", configErr.Field)
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 2*time.Second, ParseDurationWithFallback("2s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("soon", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.Equal(t, 2.5, ParseFloatWithFallback("2.5", 1))
	assert.Equal(t, 1.0, ParseFloatWithFallback("", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.False(t, ParseBoolWithFallback("maybe", false))
	assert.Equal(t, uint32(0750), ParseUint32WithFallback("750", 8, 0755))
	assert.Equal(t, uint32(0755), ParseUint32WithFallback("9", 8, 0755))
}
