package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Overview key.Binding
	Metrics  key.Binding
	Systems  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Metrics, k.Systems},
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Overview: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
	Metrics:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "metrics")),
	Systems:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "systems")),
	Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev tab")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
