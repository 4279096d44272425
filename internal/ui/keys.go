package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Board
	Up             key.Binding
	Down           key.Binding
	Unselect       key.Binding
	Delete         key.Binding
	ColumnForward  key.Binding
	ColumnBackward key.Binding

	// General
	Help       key.Binding
	CycleTheme key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Select previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Select next"),
		),
		Unselect: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Clear selection"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete selected"),
		),
		ColumnForward: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Next column"),
		),
		ColumnBackward: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Previous column"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Unselect, k.Delete},
		{k.ColumnForward, k.ColumnBackward},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
