package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the runner. Bindings carry help text
// so the footer can be generated by the help bubble.
type KeyMap struct {
	Jump    key.Binding
	Duck    key.Binding
	Start   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓ (hold)", "duck"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck},
		{k.Start, k.Restart, k.Quit},
	}
}
