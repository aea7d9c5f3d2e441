package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo keybindings.
type keyMap struct {
	Cycle    key.Binding
	Minimize key.Binding
	Maximize key.Binding
	Close    key.Binding
	Dropdown key.Binding
	Restore  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle panes"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f", "maximize/restore"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Dropdown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dock list"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore first minimized"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Minimize, k.Maximize, k.Close, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cycle, k.Minimize, k.Maximize, k.Close},
		{k.Dropdown, k.Restore, k.Help, k.Quit},
	}
}
