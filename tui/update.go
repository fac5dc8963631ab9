package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/playback"
)

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if cmd := b.toasts.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case noticeMsg:
		cmds = append(cmds, b.waitForNotice())
	case tickMsg:
		if b.state == closedState {
			return b, tea.Batch(cmds...)
		}
		b.snapshot = b.session.Snapshot()
		cmds = append(cmds, b.tick())
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case eventMsg:
		cmds = append(cmds, b.handleEvent(playback.Event(msg)))
	case eventsClosedMsg:
		// The session is gone; nothing else will arrive.
	case tea.KeyMsg:
		cmds = append(cmds, b.handleKey(msg))
	}

	return b, tea.Batch(cmds...)
}

func (b *bubble) handleEvent(e playback.Event) tea.Cmd {
	b.snapshot = b.session.Snapshot()

	switch e.Type {
	case playback.EventTerminalError:
		log.With(log.Fields{"session": b.session.ID}).Error(e.Err)
		b.terminal = mo.Some(e)
		b.setState(dialogState)
		return nil
	case playback.EventEnded:
		b.close()
		return tea.Quit
	}
	return b.waitForEvent()
}

func (b *bubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.forceQuit):
		b.close()
		return tea.Quit
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil
	}

	switch b.state {
	case playingState:
		switch {
		case key.Matches(msg, b.keymap.playPause):
			b.session.Toggle()
		case key.Matches(msg, b.keymap.quit):
			b.close()
			return tea.Quit
		}
	case dialogState:
		if key.Matches(msg, b.keymap.dismiss) {
			b.session.Dismiss()
			b.setState(closedState)
			return tea.Quit
		}
	}
	return nil
}

func (b *bubble) close() {
	b.orchestrator.Close(b.session)
	b.setState(closedState)
}
