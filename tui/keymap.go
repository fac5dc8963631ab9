package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/style"
)

type keymap struct {
	state state

	playPause, quit, forceQuit, dismiss, showHelp key.Binding
}

func (k *keymap) setState(s state) {
	k.state = s
}

func newKeymap() *keymap {
	return &keymap{
		playPause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "close"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("back")),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	switch k.state {
	case dialogState:
		return []key.Binding{k.dismiss, k.forceQuit}
	default:
		return []key.Binding{k.playPause, k.quit, k.showHelp}
	}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.forceQuit}}
}
