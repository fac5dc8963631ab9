package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/color"
	"github.com/streamfront/streamfront/icon"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/style"
)

// CheckDependencies exits when the configured native player is not on PATH.
func CheckDependencies() {
	player := viper.GetString(key.PlaybackNative)
	if _, err := exec.LookPath(player); err != nil {
		printMissingDependencyError(player)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Danger).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.Danger).Render(fmt.Sprintf("%s Missing player", icon.Get(icon.Fail)))
	body := style.New().Foreground(color.Text).Render(fmt.Sprintf("'%s' was not found in your PATH. Direct links need it to play.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Accent).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
