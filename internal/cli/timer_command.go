package cli

import (
	"context"
	"time"

	"productivity-clock/internal/config"
	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/services"
)

// TimerCommand handles the timer command and its actions
type TimerCommand struct {
	app          *App
	host         services.TimerController
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(app *App) *TimerCommand {
	return &TimerCommand{
		app:          app,
		host:         app.host,
		config:       app.config,
		errorHandler: NewErrorHandler(app.out),
	}
}

// Execute runs the timer command. With no action it shows the status.
func (c *TimerCommand) Execute(ctx context.Context, args []string) error {
	action := "status"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "status":
		return c.sync(ctx, "show timer")
	case "sync":
		return c.sync(ctx, "sync timer")
	case "set":
		if len(args) != 1 {
			return errors.NewInvalidArgumentError("command", "timer set", "usage: pc timer set <minutes>")
		}
		minutes, err := parseMinutes(args[0])
		if err != nil {
			return c.errorHandler.Handle("set timer", err)
		}
		return c.apply("set timer", func() (services.TimerOutcome, error) {
			return c.host.Configure(ctx, minutes)
		})
	case "start":
		return c.apply("start timer", func() (services.TimerOutcome, error) {
			return c.host.Start(ctx)
		})
	case "pause":
		return c.apply("pause timer", func() (services.TimerOutcome, error) {
			return c.host.Pause(ctx)
		})
	case "reset":
		return c.apply("reset timer", func() (services.TimerOutcome, error) {
			return c.host.Reset(ctx)
		})
	case "extend":
		return c.apply("extend timer", func() (services.TimerOutcome, error) {
			return c.host.Extend(ctx)
		})
	default:
		return errors.NewInvalidArgumentError("timer action", action, "usage: pc timer [status|set <minutes>|start|pause|reset|extend|sync]")
	}
}

func (c *TimerCommand) sync(ctx context.Context, operation string) error {
	return c.apply(operation, func() (services.TimerOutcome, error) {
		return c.host.Sync(ctx)
	})
}

// apply runs an intent, prints the resulting state and then reports its error.
// A rejected intent leaves the state untouched so nothing is printed for it.
func (c *TimerCommand) apply(operation string, intent func() (services.TimerOutcome, error)) error {
	outcome, err := intent()
	if err != nil && !errors.IsWarning(err) && !c.errorHandler.IsStorageError(err) {
		return c.errorHandler.Handle(operation, err)
	}

	c.printState(outcome)
	return c.errorHandler.Handle(operation, err)
}

func (c *TimerCommand) printState(outcome services.TimerOutcome) {
	state := outcome.State
	c.app.printf("Timer: %s %s (of %s", services.FormatRemaining(state.Remaining), state.Phase(), services.FormatMinutes(state.InitialMinutes()))
	if state.ExtensionsUsed > 0 {
		c.app.printf(", extended %dx", state.ExtensionsUsed)
	}
	c.app.printf(")\n")

	if c.config.Application.Verbose {
		c.app.printf("Progress: %.0f%%\n", state.Progress()*100)
		if state.LastObservedAt != nil {
			c.app.printf("Last observed: %s\n", state.LastObservedAt.Local().Format(time.RFC3339))
		}
	}

	if state.Phase() == domain.PhaseComplete {
		c.app.printf("Time's up! Run 'pc timer extend' for %s more or 'pc timer reset' to start over.\n",
			services.FormatMinutes(c.config.Timer.ExtensionMinutes))
	}
}
