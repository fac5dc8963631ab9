package playback

import "errors"

var (
	// ErrStrategyLoadFailure wraps any failure of a single candidate: a surface error or the fallback timeout.
	ErrStrategyLoadFailure = errors.New("strategy load failure")

	// ErrExhaustedStrategies is carried by the terminal event once no candidate is left.
	ErrExhaustedStrategies = errors.New("all playback strategies failed")

	errNoSurface = errors.New("no surface available")
	errMedia     = errors.New("media error")
)
