package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the search screen bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Submit     key.Binding
	ToggleCase key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Up         key.Binding
	Down       key.Binding
	Detail     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings. Letters are never bound so
// that every printable key reaches the query input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "case"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("ctrl+p", "pgup"),
			key.WithHelp("ctrl+p", "prev page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleCase, k.NextPage, k.PrevPage, k.Detail, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.ToggleCase},
		{k.NextPage, k.PrevPage, k.Up, k.Down},
		{k.Detail, k.Back, k.Quit},
	}
}
