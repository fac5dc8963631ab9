package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/remedy"
	"github.com/streamfront/streamfront/source"
)

const (
	fallbackTitle  = "Trying alternate method"
	fallbackLinger = 3 * time.Second
)

// Snapshot is a consistent copy of a session's observable state.
type Snapshot struct {
	State         State
	Loading       bool
	CurrentTime   float64
	Duration      float64
	StrategyIndex int
	Candidate     source.Candidate
	Progress      mo.Option[float64]
	Elapsed       time.Duration
}

// Session plays one descriptor, walking its candidates until one works.
// All methods are safe for concurrent use.
type Session struct {
	ID         string
	Title      string
	Descriptor source.Descriptor

	clock      Clock
	surfaces   SurfaceFactory
	sink       notify.Sink
	onProgress ProgressFunc
	onDismiss  func()
	timeout    time.Duration
	events     chan Event
	dismissed  sync.Once

	// deliver serialises callbacks so progress and notices arrive in order.
	deliver sync.Mutex

	mu          sync.Mutex
	state       State
	loading     bool
	index       int
	generation  uint64
	surface     Surface
	timer       Timer
	started     time.Time
	currentTime float64
	duration    float64
	progress    mo.Option[float64]
	outcome     Outcome
	ended       bool
}

// effects collects work decided under the lock and carried out after it is released.
type effects struct {
	// generation is the session generation the effects were decided in.
	generation uint64
	teardown   []Surface
	notices  []notify.Notice
	progress mo.Option[float64]
	// advance is the generation that must still be current before the next candidate is loaded.
	advance mo.Option[uint64]
	load    *attempt
}

type attempt struct {
	generation uint64
	candidate  source.Candidate
}

func (s *Session) entry() *logrus.Entry {
	return log.With(log.Fields{"session": s.ID, "kind": s.Descriptor.Kind})
}

// Events publishes fallback notices and the terminal error. It is closed with the session.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, _ := s.Descriptor.Candidate(s.index)
	snap := Snapshot{
		State:         s.state,
		Loading:       s.loading,
		CurrentTime:   s.currentTime,
		Duration:      s.duration,
		StrategyIndex: s.index,
		Candidate:     c,
		Progress:      s.progress,
	}
	if !s.started.IsZero() {
		snap.Elapsed = s.clock.Now().Sub(s.started)
	}
	return snap
}

// Outcome reports whether the session ever played or finally failed.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *Session) start() {
	s.mu.Lock()
	if s.state != Idle {
		s.mu.Unlock()
		return
	}
	var fx effects
	s.beginLocked(0, &fx)
	fx.generation = s.generation
	s.mu.Unlock()

	s.apply(fx)
}

// beginLocked makes candidate i the current attempt.
func (s *Session) beginLocked(i int, fx *effects) {
	s.generation++
	s.index = i
	s.state = Loading
	s.loading = true
	s.started = s.clock.Now()
	s.currentTime, s.duration = 0, 0
	s.progress = mo.None[float64]()

	gen := s.generation
	if s.Descriptor.Kind == source.GoogleDrive && i == 0 && s.Descriptor.HasNext(i) {
		s.timer = s.clock.AfterFunc(s.timeout, func() { s.expire(gen) })
	}

	c, _ := s.Descriptor.Candidate(i)
	fx.load = &attempt{generation: gen, candidate: c}
	s.entry().WithFields(log.Fields{"attempt": i, "mode": c.Mode}).Info("loading candidate")
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// apply runs side effects in order: teardown, callbacks, then the next load.
func (s *Session) apply(fx effects) {
	for _, surface := range fx.teardown {
		if err := surface.Close(); err != nil {
			s.entry().WithError(err).Warn("closing surface")
		}
	}

	if len(fx.notices) > 0 || fx.progress.IsPresent() {
		s.deliver.Lock()
		if s.current(fx.generation) {
			for _, n := range fx.notices {
				s.sink.Deliver(n)
			}
			if p, ok := fx.progress.Get(); ok && s.onProgress != nil {
				s.onProgress(p)
			}
		}
		s.deliver.Unlock()
	}

	if gen, ok := fx.advance.Get(); ok {
		s.mu.Lock()
		if s.generation != gen || s.state != FallbackPending {
			s.mu.Unlock()
			return
		}
		var next effects
		s.beginLocked(s.index+1, &next)
		next.generation = s.generation
		s.mu.Unlock()
		s.apply(next)
		return
	}

	if fx.load != nil {
		s.load(*fx.load)
	}
}

// current reports whether effects decided in gen may still reach callbacks.
func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != Closed && s.generation == gen
}

func (s *Session) load(a attempt) {
	emit := func(sig Signal) { s.handle(a.generation, sig) }

	if s.surfaces == nil {
		emit(Signal{Kind: SignalError, Err: errNoSurface})
		return
	}

	surface, err := s.surfaces.Surface(a.candidate)
	if err != nil {
		emit(Signal{Kind: SignalError, Err: err})
		return
	}

	s.mu.Lock()
	if s.generation != a.generation || s.state == Closed {
		s.mu.Unlock()
		_ = surface.Close()
		return
	}
	s.surface = surface
	s.mu.Unlock()

	if err := surface.Load(a.candidate.Address, emit); err != nil {
		emit(Signal{Kind: SignalError, Err: err})
	}
}

// handle applies a surface signal if it belongs to the current attempt.
func (s *Session) handle(gen uint64, sig Signal) {
	s.mu.Lock()
	if s.generation != gen || s.state == Closed || s.state == TerminalError {
		s.mu.Unlock()
		s.entry().WithField("signal", sig.Kind).Trace("ignoring stale signal")
		return
	}

	var fx effects
	switch sig.Kind {
	case SignalLoadStart, SignalWaiting:
		s.loading = true
	case SignalLoadedMetadata:
		if finite(sig.Duration) && sig.Duration > 0 {
			s.duration = sig.Duration
		}
		s.readyLocked()
	case SignalCanPlay, SignalLoad:
		s.readyLocked()
	case SignalTimeUpdate:
		s.timeUpdateLocked(sig, &fx)
	case SignalPlay:
		if s.state.Ready() {
			s.state = Playing
			s.loading = false
		}
	case SignalPause:
		if s.state.Ready() {
			s.state = Paused
		}
	case SignalEnded:
		s.endedLocked()
	case SignalError:
		cause := sig.Err
		if cause == nil {
			cause = errMedia
		}
		c, _ := s.Descriptor.Candidate(s.index)
		s.failLocked(fmt.Errorf("%w: candidate %d (%s): %w", ErrStrategyLoadFailure, s.index, c.Mode, cause), false, &fx)
	}
	fx.generation = s.generation
	s.mu.Unlock()

	s.apply(fx)
}

func (s *Session) readyLocked() {
	s.loading = false
	if s.state != Loading {
		return
	}
	s.stopTimerLocked()
	s.state = Paused
	s.outcome = Played
	s.entry().WithFields(log.Fields{
		"attempt": s.index,
		"elapsed": s.clock.Now().Sub(s.started),
	}).Info("candidate ready")
}

func (s *Session) timeUpdateLocked(sig Signal, fx *effects) {
	if finite(sig.Duration) && sig.Duration > 0 {
		s.duration = sig.Duration
	}
	if !finite(sig.CurrentTime) {
		return
	}
	s.currentTime = sig.CurrentTime

	if p, ok := Percent(s.currentTime, s.duration); ok {
		s.progress = mo.Some(p)
		if s.onProgress != nil {
			fx.progress = mo.Some(p)
		}
	}
}

// endedLocked keeps the session ready but tells the shell that nothing is showing any more.
func (s *Session) endedLocked() {
	if !s.state.Ready() || s.ended {
		return
	}
	s.ended = true
	s.loading = false
	s.state = Paused
	s.entry().WithField("attempt", s.index).Info("surface closed by the user")
	s.publishLocked(Event{Type: EventEnded, Title: "Playback ended"})
}

// expire fires when candidate 0 of a Drive source stayed silent for too long.
func (s *Session) expire(gen uint64) {
	s.mu.Lock()
	if s.generation != gen || s.state != Loading {
		s.mu.Unlock()
		return
	}
	s.timer = nil

	var fx effects
	s.failLocked(fmt.Errorf("%w: no response after %s", ErrStrategyLoadFailure, s.timeout), true, &fx)
	fx.generation = s.generation
	s.mu.Unlock()

	s.apply(fx)
}

// failLocked moves to the next candidate or, when none is left, to TerminalError.
func (s *Session) failLocked(cause error, timedOut bool, fx *effects) {
	s.stopTimerLocked()
	if s.surface != nil {
		fx.teardown = append(fx.teardown, s.surface)
		s.surface = nil
	}

	entry := s.entry().WithError(cause).WithField("attempt", s.index)

	if s.Descriptor.HasNext(s.index) {
		entry.Warn("candidate failed, falling back")
		s.state = FallbackPending
		s.generation++
		fx.advance = mo.Some(s.generation)

		message := s.fallbackMessage(timedOut)
		s.publishLocked(Event{Type: EventNotice, Title: fallbackTitle, Message: message, Err: cause})
		fx.notices = append(fx.notices, notify.Notice{
			Title:       fallbackTitle,
			Description: message,
			Severity:    notify.Info,
			Duration:    fallbackLinger,
		})
		return
	}

	entry.Error("no candidates left")
	s.state = TerminalError
	s.loading = false
	s.outcome = Failed
	s.generation++

	r := remedy.For(s.Descriptor)
	err := fmt.Errorf("%w: %s after %d attempts: %w", ErrExhaustedStrategies, s.Descriptor.Kind, s.index+1, cause)
	s.publishLocked(Event{Type: EventTerminalError, Title: r.Title, Message: r.String(), Err: err})
	fx.notices = append(fx.notices, notify.Notice{
		Title:       r.Title,
		Description: r.String(),
		Severity:    notify.Destructive,
		Duration:    r.Linger,
	})
}

func (s *Session) fallbackMessage(timedOut bool) string {
	if s.Descriptor.Kind != source.GoogleDrive {
		return "The current method failed. Trying the next one..."
	}
	if timedOut {
		return "Loading Google Drive video via the preview page..."
	}
	return "The direct method failed. Trying to load via the preview page..."
}

// publishLocked never blocks: the buffer fits a notice per fallback plus the ended and terminal events.
func (s *Session) publishLocked(e Event) {
	select {
	case s.events <- e:
	default:
		s.entry().WithField("event", e.Type).Warn("event buffer full, dropping")
	}
}

// Play resumes a ready session. It is a no-op in every other state.
func (s *Session) Play() {
	s.control(Surface.Play)
}

// Pause pauses a ready session. It is a no-op in every other state.
func (s *Session) Pause() {
	s.control(Surface.Pause)
}

// Toggle flips between Playing and Paused.
func (s *Session) Toggle() {
	s.mu.Lock()
	playing := s.state == Playing
	s.mu.Unlock()

	if playing {
		s.Pause()
	} else {
		s.Play()
	}
}

func (s *Session) control(op func(Surface) error) {
	s.mu.Lock()
	surface := s.surface
	ready := s.state.Ready()
	s.mu.Unlock()

	if !ready || surface == nil {
		return
	}
	if err := op(surface); err != nil {
		s.entry().WithError(err).Warn("surface control")
	}
}

// Close destroys the session. It is idempotent and valid in every state.
// No notice or progress callback runs after it returns, so callbacks must not call Close themselves.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		return
	}
	s.state = Closed
	s.loading = false
	s.generation++
	s.stopTimerLocked()
	surface := s.surface
	s.surface = nil
	close(s.events)
	s.mu.Unlock()

	if surface != nil {
		if err := surface.Close(); err != nil {
			s.entry().WithError(err).Warn("closing surface")
		}
	}

	// Wait out a delivery that passed its check before the state changed.
	s.deliver.Lock()
	s.deliver.Unlock()
	s.entry().Debug("session closed")
}

// Dismiss closes the session and hands control back to the caller's navigation callback.
func (s *Session) Dismiss() {
	s.Close()
	s.dismissed.Do(func() {
		if s.onDismiss != nil {
			s.onDismiss()
		}
	})
}
