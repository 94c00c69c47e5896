package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	add        key.Binding
	remove     key.Binding
	complete   key.Binding
	togglePlay key.Binding
	report     key.Binding
	up         key.Binding
	down       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add task"),
	),
	remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove"),
	),
	complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/stop"),
	),
	report: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "report"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.add, k.complete, k.remove, k.report, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		k.ShortHelp(),
	}
}
