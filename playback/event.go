package playback

// EventType distinguishes the events a session publishes.
type EventType int

const (
	// EventNotice announces a switch to the next candidate.
	EventNotice EventType = iota
	// EventTerminalError is published once, when no candidate is left.
	EventTerminalError
	// EventEnded is published once, when the user closed a surface that was playing.
	EventEnded
)

func (t EventType) String() string {
	switch t {
	case EventTerminalError:
		return "terminal-error"
	case EventEnded:
		return "ended"
	default:
		return "notice"
	}
}

// Event is what a shell needs to show a toast or the remediation dialog.
type Event struct {
	Type    EventType
	Title   string
	Message string
	Err     error
}
