package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"productivity-clock/internal/config"
	"productivity-clock/internal/domain"
	"productivity-clock/internal/errors"
	"productivity-clock/internal/logging"
	"productivity-clock/internal/services"
)

// tickMsg is the once-per-second heartbeat.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the interactive clock.
type Model struct {
	ctx     context.Context
	host    services.Host
	config  *config.Config
	now     func() time.Time
	keys    keyMap
	help    help.Model
	input   textinput.Model
	styles  Styles
	session services.Session

	adding    bool
	cursor    int
	status    string
	celebrate bool
	width     int
}

// New creates the clock model for a loaded host.
func New(ctx context.Context, host services.Host, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = cfg.Tasks.TextMaxLength
	input.Prompt = "+ "

	session := host.Snapshot()
	return Model{
		ctx:     ctx,
		host:    host,
		config:  cfg,
		now:     time.Now,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		styles:  NewStyles(session.Dark),
		session: session,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		outcome, err := m.host.Tick(m.ctx)
		m.session.Timer = outcome.State
		m.report("tick", err)
		return m, tick()

	case tea.FocusMsg:
		outcome, err := m.host.Resume(m.ctx, m.now())
		m.session.Timer = outcome.State
		m.report("resume", err)
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartPause):
		if m.session.Timer.Running {
			m.timer("pause", m.host.Pause)
		} else {
			m.timer("start", m.host.Start)
		}

	case key.Matches(msg, m.keys.Reset):
		m.timer("reset", m.host.Reset)

	case key.Matches(msg, m.keys.Extend):
		m.timer("extend", m.host.Extend)

	case key.Matches(msg, m.keys.Theme):
		dark, err := m.host.ToggleTheme(m.ctx)
		m.session.Dark = dark
		m.styles = NewStyles(dark)
		m.report("toggle theme", err)

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session.Tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selectedID(); ok {
			m.tasks("toggle task", func() (services.TaskOutcome, error) {
				return m.host.ToggleTask(m.ctx, id)
			})
		}

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.tasks("delete task", func() (services.TaskOutcome, error) {
				return m.host.DeleteTask(m.ctx, id)
			})
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		m.adding = false
		m.input.Blur()
		m.tasks("add task", func() (services.TaskOutcome, error) {
			return m.host.AddTask(m.ctx, text)
		})
		if len(m.session.Tasks) > 0 {
			m.cursor = len(m.session.Tasks) - 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) timer(operation string, intent func(context.Context) (services.TimerOutcome, error)) {
	outcome, err := intent(m.ctx)
	m.session.Timer = outcome.State
	m.status = ""
	m.report(operation, err)
}

func (m *Model) tasks(operation string, intent func() (services.TaskOutcome, error)) {
	outcome, err := intent()
	m.status = ""
	if outcome.Tasks != nil {
		m.session.Tasks = outcome.Tasks
	}
	m.celebrate = outcome.AllComplete || (m.celebrate && m.session.Tasks.AllCompleted())
	if m.cursor >= len(m.session.Tasks) {
		m.cursor = max(len(m.session.Tasks)-1, 0)
	}
	m.report(operation, err)
}

// report turns an intent error into the status line. Rejected intents are silent
// except for their message; environment failures are also logged.
func (m *Model) report(operation string, err error) {
	if err == nil {
		return
	}
	if errors.ShouldLogError(err) {
		logging.Debugf("%s: %v\n", operation, err)
	}
	m.status = errors.GetUserMessage(err)
}

func (m Model) selectedID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.session.Tasks) {
		return "", false
	}
	return m.session.Tasks[m.cursor].ID, true
}

// Session returns what the view currently shows.
func (m Model) Session() services.Session {
	return m.session
}

// Phase is a shortcut for the derived timer phase.
func (m Model) Phase() domain.Phase {
	return m.session.Timer.Phase()
}
