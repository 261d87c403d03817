package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"productivity-clock/internal/config"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/logging"
	"productivity-clock/internal/services"
)

// HostFactory opens the session host for a resolved configuration. The returned
// close function releases whatever the host holds open, such as the database.
type HostFactory func(cfg *config.Config) (services.Host, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	newHost HostFactory
	appOpts []AppOption
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, newHost HostFactory, opts ...AppOption) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		newHost: newHost,
		appOpts: opts,
	}

	root.cmd = &cobra.Command{
		Use:   "pc",
		Short: "A productivity clock with a countdown timer and a task list",
		Long: `Productivity Clock (pc) is a countdown timer with a task checklist.

FEATURES:
  • Countdown of 1 to 9999 minutes with pause, reset and extend once time is up
  • A warning when the countdown is extended more than three times
  • Task checklist with add, edit, toggle, reorder and delete
  • State survives restarts; a running countdown keeps counting while pc is closed
  • Optional ntfy push notification when time is up
  • Light and dark themes for the interactive clock

EXAMPLES:
  pc timer set 50                          # Configure a 50 minute countdown
  pc timer start                           # Start or resume the countdown
  pc timer                                 # Show the remaining time
  pc timer extend                          # Add 5 minutes once time is up
  pc task add "Write the report"           # Add a task
  pc task toggle 1                         # Toggle the first task
  pc task move 3 1                         # Move the third task to the top
  pc notify test                           # Send a test push notification
  pc run                                   # Open the interactive clock

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file:
    PC_CONFIG                              YAML config file (default: ~/.pc/config.yaml)

  Storage Configuration:
    PC_DB_DIR                              Database directory (default: ~/.pc)
    PC_DB_FILENAME                         Database filename (default: clock.db)
    PC_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    PC_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Timer Configuration:
    PC_TIMER_DEFAULT_MINUTES               Countdown length before one is set (default: 25)
    PC_TIMER_EXTENSION_MINUTES             Minutes granted by extend (default: 5)
    PC_TIMER_EXTENSION_WARN_AFTER          Extensions before the warning (default: 3)

  Notification Configuration:
    PC_NOTIFY_ENABLED                      Push when time is up (default: false)
    PC_NOTIFY_SERVER                       ntfy server (default: https://ntfy.sh)
    PC_NOTIFY_TOPIC                        ntfy topic
    PC_NOTIFY_MESSAGE                      Message body
    PC_NOTIFY_PRIORITY                     ntfy priority (default: default)
    PC_NOTIFY_TAGS                         ntfy tags (default: stopwatch)

  Display Configuration:
    PC_DISPLAY_THEME                       auto, light or dark (default: auto)

  Application Configuration:
    PC_APP_TIMEOUT                         Command timeout (default: 60s)
    PC_APP_VERBOSE                         Enable verbose output (default: false)
    PC_DEBUG                               Print debug logs to stderr

GETTING HELP:
  pc [command] --help                      # Get help for any specific command
  pc completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with args, mainly for tests
func (r *RootCommand) ExecuteContext(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("db-dir", "", "Database directory (overrides PC_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides PC_DB_FILENAME)")

	// Timer configuration
	flags.Float64("default-minutes", 0, "Countdown length before one is set (overrides PC_TIMER_DEFAULT_MINUTES)")
	flags.Float64("extension-minutes", 0, "Minutes granted by extend (overrides PC_TIMER_EXTENSION_MINUTES)")

	// Notification configuration
	flags.Bool("notify", false, "Push a notification when time is up (overrides PC_NOTIFY_ENABLED)")
	flags.String("notify-server", "", "ntfy server (overrides PC_NOTIFY_SERVER)")
	flags.String("notify-topic", "", "ntfy topic (overrides PC_NOTIFY_TOPIC)")

	// Display configuration
	flags.String("theme", "", "auto, light or dark (overrides PC_DISPLAY_THEME)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides PC_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides PC_APP_VERBOSE)")
}

type action struct {
	use   string
	short string
	args  cobra.PositionalArgs
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.group("timer", "Show or drive the countdown", "status", []action{
		{"status", "Show the remaining time", cobra.NoArgs},
		{"set <minutes>", "Configure the countdown length (1-9999 minutes)", cobra.ExactArgs(1)},
		{"start", "Start or resume the countdown", cobra.NoArgs},
		{"pause", "Pause the countdown", cobra.NoArgs},
		{"reset", "Return to the configured length", cobra.NoArgs},
		{"extend", "Add the extension length once time is up", cobra.NoArgs},
		{"sync", "Catch up with time that passed while pc was closed", cobra.NoArgs},
	}))

	r.cmd.AddCommand(r.group("task", "Manage the task checklist", "list", []action{
		{"list", "List tasks", cobra.NoArgs},
		{"add <text>", "Add a task", cobra.MinimumNArgs(1)},
		{"toggle <id>", "Toggle a task by id or position", cobra.ExactArgs(1)},
		{"edit <id> <text>", "Replace the text of a task", cobra.MinimumNArgs(2)},
		{"rm <id>", "Delete a task by id or position", cobra.ExactArgs(1)},
		{"move <from> <to>", "Move a task to another position", cobra.ExactArgs(2)},
		{"clear", "Delete all tasks", cobra.NoArgs},
	}))

	r.cmd.AddCommand(r.group("theme", "Show the light/dark preference", "", []action{
		{"toggle", "Switch between light and dark", cobra.NoArgs},
	}))

	r.cmd.AddCommand(r.group("notify", "Push notification helpers", "", []action{
		{"test", "Send a test notification with the current settings", cobra.NoArgs},
	}))

	r.cmd.AddCommand(r.group("state", "Show what pc has saved", "", []action{
		{"clear", "Delete the saved timer, tasks and theme", cobra.NoArgs},
	}))

	r.cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Open the interactive clock",
		Long:  "Open the full-screen clock. space starts or pauses, r resets, e extends, t toggles the theme and q quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.execute(cmd, "run", nil, false)
		},
	})
}

// group builds a command whose subcommands map to actions of one registry command.
// The group itself runs defaultAction, or the registry command with no args when empty.
func (r *RootCommand) group(name, short, defaultAction string, actions []action) *cobra.Command {
	parent := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaultAction == "" {
				return r.execute(cmd, name, nil, true)
			}
			return r.execute(cmd, name, []string{defaultAction}, true)
		},
	}

	for _, a := range actions {
		child := &cobra.Command{
			Use:   a.use,
			Short: a.short,
			Args:  a.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.execute(cmd, name, append([]string{cmd.Name()}, args...), true)
			},
		}
		parent.AddCommand(child)
	}
	return parent
}

// execute resolves the configuration, opens the host and dispatches to the registry.
// It waits for background notifications before closing the host.
func (r *RootCommand) execute(cmd *cobra.Command, name string, args []string, bounded bool) (err error) {
	cfg, err := r.loader.LoadWithOverrides(r.overridesFromFlags(cmd.Flags()))
	if err != nil {
		return err
	}

	host, closeHost, err := r.newHost(cfg)
	if err != nil {
		return err
	}
	defer func() {
		host.Wait()
		if closeErr := closeHost(); closeErr != nil && err == nil {
			err = errors.NewStorageError("close database", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if bounded {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.getAppTimeout(cfg))
		defer cancel()
	}

	if err := host.Load(ctx); err != nil {
		logging.Debugf("load session: %v\n", err)
	}

	app := NewApp(host, cfg, r.appOpts...)
	return app.registry.Execute(ctx, name, args)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout(cfg *config.Config) time.Duration {
	if cfg.Application.Timeout <= 0 {
		return 60 * time.Second
	}
	return cfg.Application.Timeout
}

// overridesFromFlags collects only the flags that were set on the command line
func (r *RootCommand) overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("default-minutes") {
		v, _ := flags.GetFloat64("default-minutes")
		overrides.DefaultMinutes = &v
	}
	if flags.Changed("extension-minutes") {
		v, _ := flags.GetFloat64("extension-minutes")
		overrides.ExtensionMinutes = &v
	}
	if flags.Changed("notify") {
		v, _ := flags.GetBool("notify")
		overrides.NotifyEnabled = &v
	}
	if flags.Changed("notify-server") {
		v, _ := flags.GetString("notify-server")
		overrides.NotifyServer = &v
	}
	if flags.Changed("notify-topic") {
		v, _ := flags.GetString("notify-topic")
		overrides.NotifyTopic = &v
	}
	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		overrides.Theme = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// UserMessage renders a command error for the terminal
func UserMessage(err error) string {
	return fmt.Sprintf("Error: %s", errors.GetUserMessage(err))
}
