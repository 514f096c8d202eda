package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	add        key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	togglePlay key.Binding
	remove     key.Binding
	up         key.Binding
	down       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add timer"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "select previous"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "select next"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
