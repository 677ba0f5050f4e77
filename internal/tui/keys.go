package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the menu screen
type KeyMap struct {
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Quit}
}
