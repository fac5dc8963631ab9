// Package notify defines the fire-and-forget channel playback uses to tell the user what happened.
package notify

import (
	"time"

	"github.com/streamfront/streamfront/log"
)

// Severity controls how loudly a notice is shown.
type Severity int

const (
	Info Severity = iota
	Destructive
)

func (s Severity) String() string {
	if s == Destructive {
		return "destructive"
	}
	return "info"
}

// Notice is a transient message with its own display duration.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
	Duration    time.Duration
}

// Sink receives notices. Deliver must not block the caller for long.
type Sink interface {
	Deliver(Notice)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notice)

func (f SinkFunc) Deliver(n Notice) { f(n) }

// Discard drops every notice.
var Discard Sink = SinkFunc(func(Notice) {})

// Log records notices in the log file.
var Log Sink = SinkFunc(func(n Notice) {
	entry := log.With(log.Fields{"title": n.Title, "severity": n.Severity, "duration": n.Duration})
	if n.Severity == Destructive {
		entry.Warn(n.Description)
		return
	}
	entry.Info(n.Description)
})

// Multi fans a notice out to several sinks in order. Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(n Notice) {
		for _, s := range sinks {
			if s != nil {
				s.Deliver(n)
			}
		}
	})
}
