package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
	"github.com/streamfront/streamfront/style"
	"github.com/streamfront/streamfront/surface"
)

var ErrNoURL = errors.New("no url given")

func out(options *Options) io.Writer {
	if options.Out == nil {
		return os.Stdout
	}
	return options.Out
}

// Classify prints how each URL would be played.
func Classify(options *Options) error {
	if len(options.URLs) == 0 {
		return ErrNoURL
	}

	descriptors := lo.Map(options.URLs, func(u string, _ int) source.Descriptor {
		return source.Classify(u)
	})
	if filter, ok := options.Filter.Get(); ok {
		descriptors = lo.Filter(descriptors, func(d source.Descriptor, _ int) bool {
			return filter(d)
		})
	}

	w := out(options)
	if options.Json {
		return writeJson(w, descriptors)
	}

	for i, d := range descriptors {
		writePretty(w, d)
		if i < len(descriptors)-1 {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func writePretty(w io.Writer, d source.Descriptor) {
	fmt.Fprintf(w, "%s %s\n", style.Fg(color.Purple)(d.Kind.String()), d.RawURL)
	if id, ok := d.ProviderID.Get(); ok {
		fmt.Fprintf(w, "  %s %s\n", style.Faint("id"), id)
	}
	for i, c := range d.Candidates {
		fmt.Fprintf(w, "  %s %s %s\n", style.Faint(fmt.Sprint(i)), style.Fg(color.Yellow)(c.Mode.String()), c.Address)
	}
	if err := d.Err(); err != nil {
		fmt.Fprintf(w, "  %s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(err.Error()))
	}
}

// Play runs the first URL without the player screen until ctx is done, the user closed
// the player window, or every candidate failed. Notices and progress go to the output as plain lines.
func Play(ctx context.Context, options *Options) (source.Descriptor, playback.Outcome, error) {
	if len(options.URLs) == 0 {
		return source.Descriptor{}, playback.Abandoned, ErrNoURL
	}

	w := out(options)
	surfaces := options.Surfaces
	if surfaces == nil {
		surfaces = surface.FromConfig(options.Title)
	}

	orchestrator := playback.New(playback.Options{
		Surfaces: surfaces,
		Sink: notify.Multi(notify.Log, notify.SinkFunc(func(n notify.Notice) {
			mark := icon.Get(icon.Info)
			if n.Severity == notify.Destructive {
				mark = icon.Get(icon.Fail)
			}
			fmt.Fprintf(w, "\n%s %s\n%s\n", mark, style.Bold(n.Title), n.Description)
		})),
		FallbackTimeout: viper.GetDuration(key.PlaybackFallbackTimeout),
	})

	onProgress := func(percent float64) {
		fmt.Fprintf(w, "\r%s %5.1f%%", icon.Get(icon.Play), percent)
	}
	if options.Json {
		onProgress = nil
	}

	session := orchestrator.Open(options.URLs[0], options.Title, onProgress)
	defer orchestrator.Close(session)

	log.With(log.Fields{"session": session.ID}).Info("playing without the player screen")

	for {
		select {
		case <-ctx.Done():
			return session.Descriptor, session.Outcome(), nil
		case e, ok := <-session.Events():
			if !ok {
				return session.Descriptor, session.Outcome(), nil
			}
			switch e.Type {
			case playback.EventTerminalError:
				return session.Descriptor, session.Outcome(), e.Err
			case playback.EventEnded:
				return session.Descriptor, session.Outcome(), nil
			}
		}
	}
}
