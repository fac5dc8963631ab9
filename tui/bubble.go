package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/samber/mo"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/style"
	"github.com/streamfront/streamfront/util"
)

type bubble struct {
	state  state
	keymap *keymap

	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model
	toasts    *toaster

	orchestrator *playback.Orchestrator
	session      *playback.Session
	notices      chan notify.Notice
	snapshot     playback.Snapshot
	terminal     mo.Option[playback.Event]

	width, height int

	options *Options
}

func newBubble(options *Options, orchestrator *playback.Orchestrator, notices chan notify.Notice) *bubble {
	b := &bubble{
		state:        playingState,
		keymap:       newKeymap(),
		spinnerC:     spinner.New(),
		progressC:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		helpC:        help.New(),
		toasts:       &toaster{},
		orchestrator: orchestrator,
		notices:      notices,
		options:      options,
	}
	b.spinnerC.Spinner = spinner.Dot
	b.spinnerC.Style = style.New().Foreground(color.Accent)
	return b
}

func (b *bubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *bubble) resize(width, height int) {
	b.width, b.height = width, height
	b.helpC.Width = width
	b.progressC.Width = util.Max(width-20, 10)
}
