package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Analyze     key.Binding
	Clear       key.Binding
	NextExample key.Binding
	FocusNext   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Analyze: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "scan source"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear editor"),
	),
	NextExample: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "load next example"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
