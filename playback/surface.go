package playback

import "github.com/streamfront/streamfront/source"

// SignalKind enumerates what a surface can report.
type SignalKind int

const (
	SignalLoadStart SignalKind = iota
	SignalLoadedMetadata
	SignalCanPlay
	SignalWaiting
	SignalTimeUpdate
	SignalPlay
	SignalPause
	SignalError
	// SignalLoad is the only success a frame can report.
	SignalLoad
	// SignalEnded means the user closed a surface that was playing.
	SignalEnded
)

var signalNames = [...]string{
	SignalLoadStart:      "loadstart",
	SignalLoadedMetadata: "loadedmetadata",
	SignalCanPlay:        "canplay",
	SignalWaiting:        "waiting",
	SignalTimeUpdate:     "timeupdate",
	SignalPlay:           "play",
	SignalPause:          "pause",
	SignalError:          "error",
	SignalLoad:           "load",
	SignalEnded:          "ended",
}

func (k SignalKind) String() string {
	if k < 0 || int(k) >= len(signalNames) {
		return "unknown"
	}
	return signalNames[k]
}

// Signal is one event from a surface. Times are in seconds.
type Signal struct {
	Kind        SignalKind
	CurrentTime float64
	Duration    float64
	Err         error
}

// Emit delivers signals back to the session that loaded the surface.
// It is safe to call from any goroutine, also after the session has moved on.
type Emit func(Signal)

// Surface renders one candidate address.
type Surface interface {
	// Load starts loading address and returns without waiting for playback.
	// Progress is reported through emit.
	Load(address string, emit Emit) error
	Play() error
	Pause() error
	// Close releases the surface. Signals emitted afterwards are ignored.
	Close() error
}

// SurfaceFactory creates the surface suitable for a candidate's mode.
type SurfaceFactory interface {
	Surface(c source.Candidate) (Surface, error)
}

// SurfaceFactoryFunc adapts a function to SurfaceFactory.
type SurfaceFactoryFunc func(c source.Candidate) (Surface, error)

func (f SurfaceFactoryFunc) Surface(c source.Candidate) (Surface, error) {
	return f(c)
}
