package cli

import (
	"context"

	"productivity-clock/internal/errors"
)

// RunCommand starts the interactive clock
type RunCommand struct {
	app *App
}

// NewRunCommand creates a new run command handler
func NewRunCommand(app *App) *RunCommand {
	return &RunCommand{app: app}
}

// Execute runs the interactive clock until the user quits
func (c *RunCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidArgumentError("command", "run", "usage: pc run")
	}
	return c.app.interactive(ctx, c.app.host, c.app.config)
}
