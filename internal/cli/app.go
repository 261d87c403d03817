package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"productivity-clock/internal/config"
	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/notify"
	"productivity-clock/internal/services"
	"productivity-clock/internal/tui"
)

// InteractiveRunner runs the full-screen clock until the user quits
type InteractiveRunner func(ctx context.Context, host services.Host, cfg *config.Config) error

// App represents the main CLI application
type App struct {
	host        services.Host
	config      *config.Config
	out         io.Writer
	registry    *CommandRegistry
	interactive InteractiveRunner
	testSink    func() (notify.Sink, error)
}

// AppOption customizes an App
type AppOption func(*App)

// WithOutput sends command output to w instead of stdout
func WithOutput(w io.Writer) AppOption {
	return func(a *App) {
		a.out = w
	}
}

// WithInteractiveRunner replaces the terminal UI started by the run command
func WithInteractiveRunner(run InteractiveRunner) AppOption {
	return func(a *App) {
		a.interactive = run
	}
}

// WithTestSink replaces the sink used by notify test when notifications are disabled
func WithTestSink(factory func() (notify.Sink, error)) AppOption {
	return func(a *App) {
		a.testSink = factory
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(host services.Host, cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		host:        host,
		config:      cfg,
		out:         os.Stdout,
		interactive: tui.Run,
	}
	app.testSink = func() (notify.Sink, error) {
		return config.CreateNtfySink(app.config)
	}
	for _, opt := range opts {
		opt(app)
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidArgumentError("command", "", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

// parseMinutes parses a countdown length such as "25" or "0.5"
func parseMinutes(arg string) (float64, error) {
	minutes, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, errors.NewInvalidConfigurationError("minutes", arg, "must be a number")
	}
	return minutes, nil
}

// parsePosition converts a 1-based position argument to a list index
func parsePosition(field, arg string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.NewInvalidArgumentError(field, arg, "must be a position such as 1")
	}
	return position - 1, nil
}

// resolveTaskID accepts either a full task id or a 1-based position in the list
func resolveTaskID(list domain.TaskList, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if list.IndexOf(arg) >= 0 {
		return arg, nil
	}
	if position, err := strconv.Atoi(arg); err == nil && position >= 1 && position <= len(list) {
		return list[position-1].ID, nil
	}
	return "", errors.NewNotFoundError("task", arg)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
