package surface

import (
	"errors"
	"fmt"
	"sync"

	"github.com/streamfront/streamfront/log"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/player"
)

var errPlayback = errors.New("native playback failed")

// Native plays direct media addresses in an mpv window.
type Native struct {
	Binary   string
	Title    string
	Autoplay bool

	mu       sync.Mutex
	mpv      *player.MPV
	listener *player.Listener
	closed   bool
	done     chan struct{}
}

// Load starts mpv in the background; failures to start are reported as an error signal.
func (n *Native) Load(address string, emit playback.Emit) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return errors.New("surface closed")
	}
	n.done = make(chan struct{})
	n.mu.Unlock()

	go n.run(address, emit)
	return nil
}

func (n *Native) run(address string, emit playback.Emit) {
	mpv := player.NewMPV(n.Binary)
	if err := mpv.Start(n.Title, !n.Autoplay); err != nil {
		emit(playback.Signal{Kind: playback.SignalError, Err: err})
		return
	}

	tr := &translator{}
	listener, err := player.Listen(mpv.Socket(), func(e player.Event) {
		for _, sig := range tr.translate(e) {
			emit(sig)
		}
	})
	if err != nil {
		_ = mpv.Close()
		emit(playback.Signal{Kind: playback.SignalError, Err: err})
		return
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		listener.Stop()
		_ = mpv.Close()
		return
	}
	n.mpv, n.listener = mpv, listener
	done := n.done
	n.mu.Unlock()

	go func() {
		select {
		case <-mpv.Exited():
			emit(exitSignal(tr.isLoaded()))
		case <-done:
		}
	}()

	if err := mpv.Load(address); err != nil {
		emit(playback.Signal{Kind: playback.SignalError, Err: err})
	}
}

func (n *Native) Play() error {
	return n.setPause(false)
}

func (n *Native) Pause() error {
	return n.setPause(true)
}

func (n *Native) setPause(paused bool) error {
	n.mu.Lock()
	mpv := n.mpv
	n.mu.Unlock()

	if mpv == nil {
		return nil
	}
	return mpv.SetPause(paused)
}

// Close quits mpv. It is safe to call before the background start finished.
func (n *Native) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	mpv, listener := n.mpv, n.listener
	if n.done != nil {
		close(n.done)
	}
	n.mu.Unlock()

	if listener != nil {
		listener.Stop()
	}
	if mpv != nil {
		return mpv.Close()
	}
	return nil
}

// exitSignal reports the player window going away: the end of playback once a file
// was loaded, a load failure before that.
func exitSignal(loaded bool) playback.Signal {
	if loaded {
		return playback.Signal{Kind: playback.SignalEnded}
	}
	return playback.Signal{Kind: playback.SignalError, Err: player.ErrExited}
}

// translator turns mpv events into media element signals.
type translator struct {
	mu       sync.Mutex
	duration float64
	loaded   bool
}

func (t *translator) isLoaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

func (t *translator) translate(e player.Event) []playback.Signal {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Name {
	case "start-file":
		return []playback.Signal{{Kind: playback.SignalLoadStart}}
	case "file-loaded":
		t.loaded = true
		return []playback.Signal{{Kind: playback.SignalCanPlay}}
	case "end-file":
		if e.Reason == "error" {
			return []playback.Signal{{Kind: playback.SignalError, Err: fmt.Errorf("%w: %s", errPlayback, e.FileError)}}
		}
		return nil
	case "property-change":
		return t.property(e)
	default:
		log.Tracef("mpv event %s", e.Name)
		return nil
	}
}

func (t *translator) property(e player.Event) []playback.Signal {
	switch e.Property {
	case "duration":
		if d, ok := e.Float(); ok && d > 0 {
			t.duration = d
			return []playback.Signal{{Kind: playback.SignalLoadedMetadata, Duration: d}}
		}
	case "time-pos":
		if pos, ok := e.Float(); ok {
			return []playback.Signal{{Kind: playback.SignalTimeUpdate, CurrentTime: pos, Duration: t.duration}}
		}
	case "pause":
		if paused, ok := e.Bool(); ok {
			if paused {
				return []playback.Signal{{Kind: playback.SignalPause}}
			}
			return []playback.Signal{{Kind: playback.SignalPlay}}
		}
	case "paused-for-cache", "seeking":
		if busy, ok := e.Bool(); ok {
			if busy {
				return []playback.Signal{{Kind: playback.SignalWaiting}}
			}
			if t.loaded {
				return []playback.Signal{{Kind: playback.SignalCanPlay}}
			}
		}
	case "eof-reached":
		if eof, ok := e.Bool(); ok && eof {
			return []playback.Signal{{Kind: playback.SignalPause}}
		}
	}
	return nil
}
