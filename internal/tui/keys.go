package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the report browser.
type keyMap struct {
	Quit     key.Binding
	Search   key.Binding
	Escape   key.Binding
	Help     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next page"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q/ctrl+c: quit  1-9: sort column  /: filter  esc: clear filter  ←/→: page  ?: toggle help"
