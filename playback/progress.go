package playback

import (
	"fmt"
	"math"
)

// ProgressFunc receives the played percentage in [0, 100].
type ProgressFunc func(percent float64)

// Percent converts a position into a percentage. It reports false while the
// duration is unknown or the position is outside [0, duration].
func Percent(currentTime, duration float64) (float64, bool) {
	if !finite(currentTime) || !finite(duration) || duration <= 0 {
		return 0, false
	}
	if currentTime < 0 || currentTime > duration {
		return 0, false
	}
	return math.Min(currentTime/duration*100, 100), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FormatClock renders seconds as m:ss, or h:mm:ss from one hour on.
func FormatClock(seconds float64) string {
	if !finite(seconds) || seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	h, m, s := total/3600, total%3600/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
