package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
	"github.com/streamfront/streamfront/style"
	"github.com/streamfront/streamfront/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

var kindIcons = map[source.Kind]icon.Icon{
	source.Direct:      icon.Direct,
	source.YouTube:     icon.YouTube,
	source.GoogleDrive: icon.Drive,
	source.ArchiveOrg:  icon.Direct,
}

func (b *bubble) View() string {
	var output string

	switch b.state {
	case playingState:
		output = b.viewPlaying()
	case dialogState:
		output = b.viewDialog()
	default:
		return ""
	}

	return b.toasts.View(output, b.width)
}

func (b *bubble) viewPlaying() string {
	if b.session == nil {
		return b.renderLines(true, []string{style.Title("Now Playing"), "", b.spinnerC.View()})
	}

	d := b.session.Descriptor
	snap := b.snapshot

	title := b.options.Title
	if title == "" {
		title = d.RawURL
	}

	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s %s",
			icon.Get(kindIcons[d.Kind]),
			style.Tag(color.Black, color.Accent)(d.Kind.String()),
			style.Fg(color.Purple)(title),
		)),
		"",
		b.viewStatus(snap),
	}

	if p, ok := snap.Progress.Get(); ok {
		lines = append(lines, "", b.progressC.ViewAs(p/100))
	}

	if viper.GetBool(key.TUIShowCandidates) {
		lines = append(lines, "", style.Faint(util.Quantify(len(d.Candidates), "candidate", "candidates")))
		for i, c := range d.Candidates {
			marker := "  "
			if i == snap.StrategyIndex {
				marker = style.Fg(color.Accent)("> ")
			}
			lines = append(lines, style.Truncate(b.width)(marker+style.Faint(c.String())))
		}
	}

	return b.renderLines(true, lines)
}

func (b *bubble) viewStatus(snap playback.Snapshot) string {
	var status string
	switch snap.State {
	case playback.Playing:
		status = icon.Get(icon.Play) + " Playing"
	case playback.Paused:
		status = icon.Get(icon.Pause) + " Paused"
	case playback.FallbackPending:
		status = icon.Get(icon.Fallback) + " Trying alternate method"
	default:
		status = "Loading"
	}

	if snap.Loading {
		status = b.spinnerC.View() + " " + status
	}

	if snap.Duration > 0 {
		status += style.Faint(fmt.Sprintf("  %s / %s",
			playback.FormatClock(snap.CurrentTime),
			playback.FormatClock(snap.Duration),
		))
	} else if snap.State == playback.Loading {
		status += style.Faint(fmt.Sprintf("  %.0fs", snap.Elapsed.Seconds()))
	}

	return style.Truncate(b.width)(status)
}

func (b *bubble) viewDialog() string {
	e, ok := b.terminal.Get()
	if !ok {
		return ""
	}

	width := util.Clamp(b.width-12, 20, 60)

	body := strings.Join([]string{
		style.ErrorTitle(icon.Get(icon.Fail) + " " + e.Title),
		"",
		wrap.String(e.Message, width),
	}, "\n")

	return b.renderLines(true, []string{style.Dialog.Render(body)})
}

func (b *bubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h+4 {
			l += strings.Repeat("\n", b.height-h-4)
		}
		l += "\n" + b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
