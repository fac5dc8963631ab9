package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamfront/streamfront/playback"
)

const refreshInterval = 250 * time.Millisecond

type tickMsg struct{}

type eventMsg playback.Event

type eventsClosedMsg struct{}

func (b *bubble) Init() tea.Cmd {
	b.session = b.orchestrator.Open(b.options.URL, b.options.Title, nil)
	b.snapshot = b.session.Snapshot()
	return tea.Batch(b.spinnerC.Tick, b.tick(), b.waitForEvent(), b.waitForNotice())
}

func (b *bubble) tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (b *bubble) waitForEvent() tea.Cmd {
	events := b.session.Events()
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(e)
	}
}

func (b *bubble) waitForNotice() tea.Cmd {
	return func() tea.Msg {
		n, ok := <-b.notices
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}
