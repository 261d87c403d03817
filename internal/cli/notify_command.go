package cli

import (
	"context"

	"productivity-clock/internal/config"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/notify"
	"productivity-clock/internal/services"
)

// NotifyCommand sends a test push with the current notification settings
type NotifyCommand struct {
	app          *App
	host         services.Host
	config       *config.Config
	newSink      func() (notify.Sink, error)
	errorHandler *ErrorHandler
}

// NewNotifyCommand creates a new notify command handler
func NewNotifyCommand(app *App) *NotifyCommand {
	return &NotifyCommand{
		app:          app,
		host:         app.host,
		config:       app.config,
		newSink:      app.testSink,
		errorHandler: NewErrorHandler(app.out),
	}
}

// Execute runs the notify command
func (c *NotifyCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] != "test" {
		return errors.NewInvalidArgumentError("command", "notify", "usage: pc notify test")
	}

	if err := c.sendTest(ctx); err != nil {
		return c.errorHandler.Handle("send test notification", err)
	}
	c.app.printf("Test notification sent to %s/%s\n", c.config.Notification.Server, c.config.Notification.Topic)
	return nil
}

// sendTest goes through the host when notifications are enabled. Otherwise the
// settings are still tried directly so they can be checked before enabling them.
func (c *NotifyCommand) sendTest(ctx context.Context) error {
	if c.config.Notification.Enabled {
		return c.host.SendTestNotification(ctx)
	}

	sink, err := c.newSink()
	if err != nil {
		return err
	}
	return notify.SendTest(ctx, sink, c.config.Notification.Priority, c.config.Notification.Tags)
}
