// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback orchestration - these keys tune strategy selection and fallback timing.
const (
	PlaybackFallbackTimeout = "playback.fallback_timeout"
	PlaybackNative          = "playback.native"
	PlaybackAutoplay        = "playback.autoplay"
)

// Embedded frame surface - these keys select how preview and embed addresses are rendered.
const (
	FrameBackend = "frame.backend"
	FrameBrowser = "frame.browser"
	FrameWidth   = "frame.width"
	FrameHeight  = "frame.height"
)

// Notifications
const (
	NotifyToasts = "notify.toasts"
)

// History Tracking - these keys configure the record of opened sources.
const (
	HistorySave  = "history.save"
	HistoryLimit = "history.limit"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// CLI and terminal shell.
const (
	CliColored        = "cli.colored"
	TUIShowCandidates = "tui.show_candidates"
)
