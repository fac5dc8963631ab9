package playback

// State is the lifecycle position of a Session.
type State int

const (
	Idle State = iota
	Loading
	Playing
	Paused
	FallbackPending
	TerminalError
	Closed
)

var stateNames = [...]string{
	Idle:            "idle",
	Loading:         "loading",
	Playing:         "playing",
	Paused:          "paused",
	FallbackPending: "fallback-pending",
	TerminalError:   "terminal-error",
	Closed:          "closed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Ready is true once a strategy has produced playable media.
func (s State) Ready() bool {
	return s == Playing || s == Paused
}

// Outcome summarises how a session went, for history.
type Outcome int

const (
	// Abandoned sessions were closed before anything played or failed for good.
	Abandoned Outcome = iota
	Played
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Played:
		return "played"
	case Failed:
		return "failed"
	default:
		return "abandoned"
	}
}
