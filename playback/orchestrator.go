// Package playback drives a classified source through its candidate addresses,
// falling back to the next one on error or timeout until something plays.
package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/source"
	"golang.org/x/exp/slices"
)

// DefaultFallbackTimeout is how long a direct Drive address may stay silent.
const DefaultFallbackTimeout = 8 * time.Second

// Options configures an Orchestrator. Zero values fall back to sensible defaults.
type Options struct {
	Surfaces        SurfaceFactory
	Sink            notify.Sink
	Clock           Clock
	FallbackTimeout time.Duration
	// OnDismiss runs after the user acknowledged a terminal error.
	OnDismiss func()
	// Classify defaults to source.Classify.
	Classify func(raw string) source.Descriptor
}

// Orchestrator owns at most one live Session at a time.
type Orchestrator struct {
	opts Options

	mu      sync.Mutex
	current *Session
}

func New(opts Options) *Orchestrator {
	if opts.Sink == nil {
		opts.Sink = notify.Discard
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.FallbackTimeout <= 0 {
		opts.FallbackTimeout = DefaultFallbackTimeout
	}
	if opts.Classify == nil {
		opts.Classify = source.Classify
	}
	return &Orchestrator{opts: opts}
}

// Open classifies rawURL and starts playing its first candidate.
// A previously opened session is closed first.
func (o *Orchestrator) Open(rawURL, title string, onProgress ProgressFunc) *Session {
	d := o.opts.Classify(rawURL)
	d.Candidates = slices.Clone(d.Candidates)
	if len(d.Candidates) == 0 {
		d.Candidates = []source.Candidate{{Address: rawURL, Mode: source.Native}}
	}

	s := &Session{
		ID:         uuid.NewString(),
		Title:      title,
		Descriptor: d,
		clock:      o.opts.Clock,
		surfaces:   o.opts.Surfaces,
		sink:       o.opts.Sink,
		onProgress: onProgress,
		onDismiss:  o.opts.OnDismiss,
		timeout:    o.opts.FallbackTimeout,
		events:     make(chan Event, len(d.Candidates)+1),
		progress:   mo.None[float64](),
	}

	o.mu.Lock()
	previous := o.current
	o.current = s
	o.mu.Unlock()

	if previous != nil {
		previous.Close()
	}

	log.With(log.Fields{"session": s.ID, "title": title, "kind": d.Kind}).Info("opening source")
	s.start()
	return s
}

// Current returns the live session, if any.
func (o *Orchestrator) Current() mo.Option[*Session] {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return mo.None[*Session]()
	}
	return mo.Some(o.current)
}

// Close closes s and forgets it. Closing an unknown or nil session is a no-op beyond s.Close.
func (o *Orchestrator) Close(s *Session) {
	if s == nil {
		return
	}

	o.mu.Lock()
	if o.current == s {
		o.current = nil
	}
	o.mu.Unlock()

	s.Close()
}
