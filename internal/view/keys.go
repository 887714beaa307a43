package view

import (
	"github.com/blockfall/blockfall-cli/internal/settings"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Rotate   key.Binding
	SoftDrop key.Binding
	HardDrop key.Binding
	Hold     key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func newKeyMap(b settings.KeyBindings) keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys(b.Left...), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys(b.Right...), key.WithHelp("→/l", "right")),
		Rotate:   key.NewBinding(key.WithKeys(b.Rotate...), key.WithHelp("↑/x", "rotate")),
		SoftDrop: key.NewBinding(key.WithKeys(b.SoftDrop...), key.WithHelp("↓/j", "soft drop")),
		HardDrop: key.NewBinding(key.WithKeys(b.HardDrop...), key.WithHelp("space", "hard drop")),
		Hold:     key.NewBinding(key.WithKeys(b.Hold...), key.WithHelp("c", "hold")),
		Pause:    key.NewBinding(key.WithKeys(b.Pause...), key.WithHelp("p", "pause")),
		Restart:  key.NewBinding(key.WithKeys(b.Restart...), key.WithHelp("r", "restart")),
		Quit:     key.NewBinding(key.WithKeys(b.Quit...), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Hold, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop},
		{k.HardDrop, k.Hold, k.Pause},
		{k.Restart, k.Quit},
	}
}
