package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to pager actions.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Goto  key.Binding
	Open  key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the pager bindings. First and Last are only enabled
// in full mode.
func DefaultKeyMap(fullMode bool) KeyMap {
	km := KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "prev page"),
		),
		First: key.NewBinding(
			key.WithKeys("<", "g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys(">", "G"),
			key.WithHelp("G", "last page"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view item"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.First.SetEnabled(fullMode)
	km.Last.SetEnabled(fullMode)
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Goto, k.Open, k.Back, k.Help, k.Quit},
	}
}
