// Package style holds lipgloss render helpers shared by the CLI and the player screen.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/streamfront/streamfront/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a renderer that wraps text at width.
func Truncate(width int) func(string) string {
	return func(s string) string { return New().Width(width).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded header badge.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle is Title in the danger color.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a renderer for a small colored label such as a source kind.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Toast is the bordered box notices are drawn in; destructive notices get the danger border.
func Toast(destructive bool) lipgloss.Style {
	border := color.Notice
	if destructive {
		border = color.Danger
	}
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Dialog frames the remediation panel shown after a terminal failure.
var Dialog = New().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(color.Danger).
	Padding(1, 2)
