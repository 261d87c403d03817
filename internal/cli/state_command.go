package cli

import (
	"context"

	"productivity-clock/internal/errors"
	"productivity-clock/internal/services"
)

// StateCommand shows or deletes what pc keeps in its database
type StateCommand struct {
	app          *App
	host         services.Host
	errorHandler *ErrorHandler
}

// NewStateCommand creates a new state command handler
func NewStateCommand(app *App) *StateCommand {
	return &StateCommand{
		app:          app,
		host:         app.host,
		errorHandler: NewErrorHandler(app.out),
	}
}

// Execute runs the state command
func (c *StateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.list(ctx)
	}
	if len(args) > 1 || args[0] != "clear" {
		return errors.NewInvalidArgumentError("command", "state", "usage: pc state [clear]")
	}

	if _, err := c.host.ForgetSavedState(ctx); err != nil {
		return c.errorHandler.Handle("clear saved state", err)
	}
	c.app.printf("Saved state cleared, the next run starts from defaults\n")
	return nil
}

func (c *StateCommand) list(ctx context.Context) error {
	entries, err := c.host.SavedState(ctx)
	if err != nil {
		return c.errorHandler.Handle("read saved state", err)
	}
	if len(entries) == 0 {
		c.app.printf("Nothing saved\n")
		return nil
	}

	for _, entry := range entries {
		c.app.printf("%-6s %5d bytes  saved %s\n", entry.Key, entry.Size, entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
