package tui

import "github.com/charmbracelet/lipgloss"

// palette is one color scheme of the clock.
type palette struct {
	accent  lipgloss.Color
	subtle  lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	text    lipgloss.Color
}

var (
	lightPalette = palette{
		accent:  lipgloss.Color("#1F6F8B"),
		subtle:  lipgloss.Color("#7A7A7A"),
		success: lipgloss.Color("#2E7D32"),
		warning: lipgloss.Color("#B5482E"),
		text:    lipgloss.Color("#1C1C1C"),
	}
	darkPalette = palette{
		accent:  lipgloss.Color("#5FAFAF"),
		subtle:  lipgloss.Color("#666666"),
		success: lipgloss.Color("#87AF87"),
		warning: lipgloss.Color("#D7875F"),
		text:    lipgloss.Color("#E4E4E4"),
	}
)

// Styles holds every style the clock view renders with.
type Styles struct {
	Title    lipgloss.Style
	Clock    lipgloss.Style
	Phase    lipgloss.Style
	Bar      lipgloss.Style
	Task     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Banner   lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
	Box      lipgloss.Style
}

// NewStyles builds the light or dark styles.
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			MarginBottom(1),
		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			Padding(0, 2),
		Phase: lipgloss.NewStyle().
			Foreground(p.subtle),
		Bar: lipgloss.NewStyle().
			Foreground(p.accent),
		Task: lipgloss.NewStyle().
			Foreground(p.text),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(p.subtle),
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.success),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Help: lipgloss.NewStyle().
			Foreground(p.subtle),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.subtle).
			Padding(1, 2),
	}
}

// DetectDark reports whether the terminal has a dark background.
func DetectDark() bool {
	return lipgloss.HasDarkBackground()
}
