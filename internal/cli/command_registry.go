package cli

import (
	"context"
	"sort"
	"strings"

	"productivity-clock/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("timer", NewTimerCommand(app))
	registry.Register("task", NewTaskCommand(app))
	registry.Register("theme", NewThemeCommand(app))
	registry.Register("notify", NewNotifyCommand(app))
	registry.Register("state", NewStateCommand(app))
	registry.Register("run", NewRunCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Names lists the registered commands in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidArgumentError("command", commandName, "unknown command, expected one of "+strings.Join(r.Names(), ", "))
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: pc timer [status|set <minutes>|start|pause|reset|extend|sync] or " +
		"pc task [list|add <text>|toggle <id>|edit <id> <text>|rm <id>|move <from> <to>|clear] or " +
		"pc theme [toggle] or pc notify test or pc state [clear] or pc run"
}
