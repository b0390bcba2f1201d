// ABOUTME: Key bindings for the interactive pager
// ABOUTME: Implements help.KeyMap so the footer lists the active keys

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Today     key.Binding
	Unit      key.Binding
	More      key.Binding
	Less      key.Binding
	Direction key.Binding
	Goto      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Unit:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "cycle unit")),
		More:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider")),
		Less:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "narrower")),
		Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "flip direction")),
		Goto:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to date")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today, k.Goto},
		{k.Unit, k.More, k.Less, k.Direction},
		{k.Help, k.Quit},
	}
}
