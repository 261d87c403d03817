package config

import (
	"net/http"

	"productivity-clock/internal/notify"
)

// CreateSink returns the notification sink described by the configuration.
// Disabled notifications yield a sink that discards everything.
func CreateSink(config *Config) (notify.Sink, error) {
	if !config.Notification.Enabled {
		return notify.NopSink{}, nil
	}
	return CreateNtfySink(config)
}

// CreateNtfySink builds the ntfy sink regardless of the enabled flag, e.g. for a test push.
func CreateNtfySink(config *Config) (*notify.NtfySink, error) {
	return notify.NewNtfySink(notify.NtfyConfig{
		Server:       config.Notification.Server,
		Topic:        config.Notification.Topic,
		Timeout:      config.Notification.Timeout,
		MaxAttempts:  config.Notification.MaxAttempts,
		InitialDelay: config.Notification.InitialDelay,
	}, &http.Client{})
}
