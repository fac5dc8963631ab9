package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/mo"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/style"
)

// toaster shows one notice at a time; a newer notice replaces the current one.
type toaster struct {
	current mo.Option[notify.Notice]
	seq     int
}

type noticeMsg notify.Notice

// clearToastMsg only clears the notice it was scheduled for.
type clearToastMsg struct {
	seq int
}

const defaultToastLinger = 3 * time.Second

func (t *toaster) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case noticeMsg:
		n := notify.Notice(msg)
		t.current = mo.Some(n)
		t.seq++
		seq := t.seq

		linger := n.Duration
		if linger <= 0 {
			linger = defaultToastLinger
		}
		return tea.Tick(linger, func(time.Time) tea.Msg {
			return clearToastMsg{seq: seq}
		})
	case clearToastMsg:
		if msg.seq == t.seq {
			t.current = mo.None[notify.Notice]()
		}
	}
	return nil
}

// View stacks the current notice under content.
func (t *toaster) View(content string, width int) string {
	n, ok := t.current.Get()
	if !ok {
		return content
	}

	mark := icon.Get(icon.Info)
	if n.Severity == notify.Destructive {
		mark = icon.Get(icon.Fail)
	}

	inner := 40
	if width > 8 {
		inner = width - 8
	}
	body := style.Bold(strings.TrimSpace(mark+" "+n.Title)) + "\n" + wrap.String(n.Description, inner)
	return content + "\n" + style.Toast(n.Severity == notify.Destructive).Render(body)
}
