package toolkit

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the window-level key bindings.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "prev"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "activate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Quit}
}
