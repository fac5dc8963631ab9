// Package open hands URLs to the operating system or a named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/streamfront/streamfront/constant"
)

// StartWith opens input with app, or the default handler when app is empty.
func StartWith(input, app string) error {
	cmd, err := Command(runtime.GOOS, input, app)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command builds the launcher invocation for goos.
func Command(goos, input, app string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		if app == "" {
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
		}
		// start treats & as a command separator.
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), nil
	case constant.Darwin:
		if app == "" {
			return exec.Command("open", input), nil
		}
		return exec.Command("open", "-a", app, input), nil
	case constant.Linux:
		if app == "" {
			return exec.Command("xdg-open", input), nil
		}
		return exec.Command(app, input), nil
	case constant.Android:
		if app == "" {
			return exec.Command("termux-open", input), nil
		}
		return exec.Command("termux-open", "--choose", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
