package cli

import (
	"context"

	"productivity-clock/internal/errors"
	"productivity-clock/internal/services"
)

// ThemeCommand shows or toggles the saved light/dark preference
type ThemeCommand struct {
	app          *App
	host         services.Host
	errorHandler *ErrorHandler
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{
		app:          app,
		host:         app.host,
		errorHandler: NewErrorHandler(app.out),
	}
}

// Execute runs the theme command
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.print(c.host.Snapshot().Dark)
		return nil
	}
	if len(args) > 1 || args[0] != "toggle" {
		return errors.NewInvalidArgumentError("command", "theme", "usage: pc theme [toggle]")
	}

	dark, err := c.host.ToggleTheme(ctx)
	c.print(dark)
	return c.errorHandler.Handle("toggle theme", err)
}

func (c *ThemeCommand) print(dark bool) {
	if dark {
		c.app.printf("Theme: dark\n")
		return
	}
	c.app.printf("Theme: light\n")
}
