package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the gradebook TUI.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	AddStudent key.Binding
	AddGrade   key.Binding
	Help       key.Binding
	Quit       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous student"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next student"),
		),
		AddStudent: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add student"),
		),
		AddGrade: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "add grade"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddStudent, k.AddGrade, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.AddStudent, k.AddGrade},
		{k.Submit, k.Cancel},
		{k.Help, k.Quit},
	}
}
