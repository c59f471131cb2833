package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the chat TUI.
type keyMap struct {
	submit key.Binding
	open   key.Binding
	up     key.Binding
	down   key.Binding
	pgup   key.Binding
	pgdown key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open playlist")),
		up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		pgup:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		pgdown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.open, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.open},
		{k.up, k.down, k.pgup, k.pgdown},
		{k.quit},
	}
}
