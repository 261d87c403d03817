package cli

import (
	"context"
	"strings"

	"productivity-clock/internal/config"
	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/services"
)

// TaskCommand handles the task command and its actions
type TaskCommand struct {
	app          *App
	host         services.Host
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(app *App) *TaskCommand {
	return &TaskCommand{
		app:          app,
		host:         app.host,
		config:       app.config,
		errorHandler: NewErrorHandler(app.out),
	}
}

// Execute runs the task command. With no action it lists the tasks.
func (c *TaskCommand) Execute(ctx context.Context, args []string) error {
	action := "list"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "list", "ls":
		c.printList(c.host.Snapshot().Tasks)
		return nil
	case "add":
		return c.apply("add task", func() (services.TaskOutcome, error) {
			return c.host.AddTask(ctx, strings.Join(args, " "))
		})
	case "toggle", "done":
		if len(args) != 1 {
			return errors.NewInvalidArgumentError("command", "task toggle", "usage: pc task toggle <id>")
		}
		return c.withID("toggle task", args[0], func(id string) (services.TaskOutcome, error) {
			return c.host.ToggleTask(ctx, id)
		})
	case "edit":
		if len(args) < 1 {
			return errors.NewInvalidArgumentError("command", "task edit", "usage: pc task edit <id> <text>")
		}
		text := strings.Join(args[1:], " ")
		return c.withID("edit task", args[0], func(id string) (services.TaskOutcome, error) {
			return c.host.EditTask(ctx, id, text)
		})
	case "rm", "delete":
		if len(args) != 1 {
			return errors.NewInvalidArgumentError("command", "task rm", "usage: pc task rm <id>")
		}
		return c.withID("delete task", args[0], func(id string) (services.TaskOutcome, error) {
			return c.host.DeleteTask(ctx, id)
		})
	case "move":
		if len(args) != 2 {
			return errors.NewInvalidArgumentError("command", "task move", "usage: pc task move <from> <to>")
		}
		from, err := parsePosition("from", args[0])
		if err != nil {
			return c.errorHandler.Handle("move task", err)
		}
		to, err := parsePosition("to", args[1])
		if err != nil {
			return c.errorHandler.Handle("move task", err)
		}
		return c.apply("move task", func() (services.TaskOutcome, error) {
			return c.host.MoveTask(ctx, from, to)
		})
	case "clear":
		return c.apply("clear tasks", func() (services.TaskOutcome, error) {
			return c.host.ClearTasks(ctx)
		})
	default:
		return errors.NewInvalidArgumentError("task action", action, "usage: pc task [list|add <text>|toggle <id>|edit <id> <text>|rm <id>|move <from> <to>|clear]")
	}
}

func (c *TaskCommand) withID(operation, arg string, intent func(id string) (services.TaskOutcome, error)) error {
	id, err := resolveTaskID(c.host.Snapshot().Tasks, arg)
	if err != nil {
		return c.errorHandler.Handle(operation, err)
	}
	return c.apply(operation, func() (services.TaskOutcome, error) {
		return intent(id)
	})
}

func (c *TaskCommand) apply(operation string, intent func() (services.TaskOutcome, error)) error {
	outcome, err := intent()
	if err != nil && !c.errorHandler.IsStorageError(err) {
		return c.errorHandler.Handle(operation, err)
	}

	c.printList(outcome.Tasks)
	if outcome.AllComplete {
		c.app.printf("All tasks complete, nice work!\n")
	}
	return c.errorHandler.Handle(operation, err)
}

func (c *TaskCommand) printList(list domain.TaskList) {
	if len(list) == 0 {
		c.app.printf("No tasks\n")
		return
	}

	for i, task := range list {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		if c.config.Application.Verbose {
			c.app.printf("%d. [%s] %s  (%s)\n", i+1, mark, task.Text, task.ID)
		} else {
			c.app.printf("%d. [%s] %s\n", i+1, mark, task.Text)
		}
	}
	c.app.printf("%d/%d completed\n", list.CompletedCount(), len(list))
}
