// Package color names the terminal colors used by the CLI and the player screen.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, so output follows the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	Black  = New("8")
	HiRed  = New("9")
)

// Player screen accents.
var (
	Accent  = New("#cba6f7")
	Text    = New("#cdd6f4")
	Danger  = New("#f38ba8")
	Notice  = New("#89b4fa")
	Success = New("#a6e3a1")
	Orange  = New("#ffb703")
)
