package device

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	restart key.Binding
	sel     key.Binding
	abort   key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	restart: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "restart"),
	),
	sel: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	abort: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "abort"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
