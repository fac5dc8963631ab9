package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/streamfront/streamfront/notify"
	"github.com/streamfront/streamfront/source"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs due timers on the calling goroutine.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t.f)
		}
	}
	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

// armed counts timers that are neither stopped nor fired.
func (c *fakeClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeSurface struct {
	mu        sync.Mutex
	candidate source.Candidate
	address   string
	emit      Emit
	loadErr   error
	plays     int
	pauses    int
	closed    bool
	// closeGate, when set, holds Close until it is closed. closing is closed once Close was entered.
	closeGate chan struct{}
	closing   chan struct{}
}

func (f *fakeSurface) Load(address string, emit Emit) error {
	f.mu.Lock()
	f.address = address
	f.emit = emit
	err := f.loadErr
	f.mu.Unlock()
	return err
}

func (f *fakeSurface) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	return nil
}

func (f *fakeSurface) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	return nil
}

func (f *fakeSurface) Close() error {
	f.mu.Lock()
	gate, closing := f.closeGate, f.closing
	f.mu.Unlock()

	if gate != nil {
		close(closing)
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// holdClose makes the next Close block until the returned func is called.
func (f *fakeSurface) holdClose() (entered <-chan struct{}, release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeGate = make(chan struct{})
	f.closing = make(chan struct{})
	return f.closing, func() { close(f.closeGate) }
}

func (f *fakeSurface) send(sig Signal) {
	f.mu.Lock()
	emit := f.emit
	f.mu.Unlock()
	emit(sig)
}

func (f *fakeSurface) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

type fakeFactory struct {
	mu       sync.Mutex
	surfaces []*fakeSurface
	// loadErrs is consumed in order, one per created surface.
	loadErrs []error
	failMode map[source.Mode]bool
}

func (f *fakeFactory) Surface(c source.Candidate) (Surface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMode[c.Mode] {
		return nil, errors.New("no backend for " + c.Mode.String())
	}
	s := &fakeSurface{candidate: c}
	if len(f.loadErrs) > 0 {
		s.loadErr, f.loadErrs = f.loadErrs[0], f.loadErrs[1:]
	}
	f.surfaces = append(f.surfaces, s)
	return s, nil
}

func (f *fakeFactory) at(i int) *fakeSurface {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.surfaces[i]
}

func (f *fakeFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.surfaces)
}

type recordingSink struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (r *recordingSink) Deliver(n notify.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingSink) all() []notify.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notice(nil), r.notices...)
}

// drain reads every event already published without blocking.
func drain(s *Session) []Event {
	var out []Event
	for {
		select {
		case e, ok := <-s.Events():
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}
