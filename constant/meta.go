// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Streamfront is the canonical application identifier used for filesystem paths and CLI branding.
	Streamfront = "streamfront"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, injected via -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Banner is printed above the root command help.
const Banner = `
  ___ _                    ___              _
 / __| |_ _ _ ___ __ _ _ _| __| _ ___ _ _ | |_
 \__ \  _| '_/ -_) _' | '  \ _| '_/ _ \ ' \|  _|
 |___/\__|_| \___\__,_|_|_|_||_| \___/_||_|\__|`

// runtime.GOOS values the opener and terminal helpers branch on.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
	Android = "android"
)
