package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"productivity-clock/internal/domain"
	"productivity-clock/internal/services"
)

const (
	barWidth   = 30
	filledChar = "■"
	emptyChar  = "□"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Productivity Clock"))
	b.WriteString("\n")
	b.WriteString(m.timerView())
	b.WriteString("\n\n")
	b.WriteString(m.tasksView())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(m.status))
	}

	b.WriteString("\n\n")
	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter save • esc cancel"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return m.styles.Box.Render(b.String()) + "\n"
}

func (m Model) timerView() string {
	state := m.session.Timer
	lines := []string{
		m.styles.Clock.Render(services.FormatRemaining(state.Remaining)),
		m.styles.Phase.Render(phaseLabel(state, m.config.Timer.ExtensionMinutes)),
		m.styles.Bar.Render(progressBar(state.Progress(), barWidth)),
	}
	if state.Phase() == domain.PhaseComplete {
		lines = append(lines, m.styles.Banner.Render("Time's up!"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) tasksView() string {
	list := m.session.Tasks
	if len(list) == 0 {
		return m.styles.Phase.Render("No tasks yet, press a to add one")
	}

	var b strings.Builder
	b.WriteString(m.styles.Phase.Render(fmt.Sprintf("Tasks %d/%d", list.CompletedCount(), len(list))))
	for i, task := range list {
		b.WriteString("\n")
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		box := "[ ] "
		style := m.styles.Task
		if task.Completed {
			box = "[x] "
			style = m.styles.Done
		}
		if i == m.cursor {
			style = style.Inherit(m.styles.Selected)
		}
		b.WriteString(cursor + style.Render(box+task.Text))
	}

	if m.celebrate {
		b.WriteString("\n")
		b.WriteString(m.styles.Banner.Render("All tasks complete!"))
	}
	return b.String()
}

func phaseLabel(state domain.TimerState, extensionMinutes float64) string {
	label := fmt.Sprintf("%s · %s", state.Phase(), services.FormatMinutes(state.InitialMinutes()))
	if state.ExtensionsUsed > 0 {
		label += fmt.Sprintf(" · extended %dx", state.ExtensionsUsed)
	}
	if state.Phase() == domain.PhaseComplete {
		label += fmt.Sprintf(" · e adds %s", services.FormatMinutes(extensionMinutes))
	}
	return label
}

// progressBar renders the remaining fraction like ■■■■□□□□.
func progressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, width-filled)
}
