package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"productivity-clock/internal/config"
	"productivity-clock/internal/services"
)

// Run shows the interactive clock until the user quits or ctx ends.
// Regaining terminal focus applies drift correction, so the clock stays true
// while the terminal was in the background.
func Run(ctx context.Context, host services.Host, cfg *config.Config) error {
	p := tea.NewProgram(
		New(ctx, host, cfg),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
