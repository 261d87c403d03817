package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartPause key.Binding
	Reset      key.Binding
	Extend     key.Binding
	Theme      key.Binding
	Add        key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Up         key.Binding
	Down       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartPause: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Extend:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "extend")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Toggle:     key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x", "toggle task")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Reset, k.Extend, k.Add, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.Reset, k.Extend, k.Theme},
		{k.Add, k.Toggle, k.Delete, k.Up, k.Down},
		{k.Quit},
	}
}
