// Package tui is the terminal player screen: status, progress, notices and the
// remediation dialog shown once every playback strategy has failed.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
	"github.com/streamfront/streamfront/surface"
	"github.com/streamfront/streamfront/util"
)

// Options configures one player screen.
type Options struct {
	URL   string
	Title string
	// OnDismiss runs when the user leaves the remediation dialog.
	OnDismiss func()
}

// Result tells the caller how the session ended.
type Result struct {
	Descriptor source.Descriptor
	Outcome    playback.Outcome
}

// Run plays options.URL until the user closes the screen.
func Run(options *Options) (Result, error) {
	notices := make(chan notify.Notice, 8)

	sinks := []notify.Sink{notify.Log}
	if viper.GetBool(key.NotifyToasts) {
		sinks = append(sinks, channelSink(notices))
	}

	orchestrator := playback.New(playback.Options{
		Surfaces:        surface.FromConfig(options.Title),
		Sink:            notify.Multi(sinks...),
		FallbackTimeout: viper.GetDuration(key.PlaybackFallbackTimeout),
		OnDismiss:       options.OnDismiss,
	})

	b := newBubble(options, orchestrator, notices)
	if width, height, err := util.TerminalSize(); err == nil {
		b.resize(width, height)
	}
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()

	result := Result{}
	if b.session != nil {
		result.Descriptor = b.session.Descriptor
		result.Outcome = b.session.Outcome()
		orchestrator.Close(b.session)
	}
	// Close delivers nothing afterwards, so the sink is done with the channel.
	close(notices)
	return result, err
}

// channelSink forwards notices to the screen without ever blocking the session.
func channelSink(ch chan notify.Notice) notify.Sink {
	return notify.SinkFunc(func(n notify.Notice) {
		select {
		case ch <- n:
		default:
		}
	})
}
