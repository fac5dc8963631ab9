// Package player runs mpv as the native media element and talks to it over JSON IPC.
package player

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streamfront/streamfront/constant"
	"github.com/streamfront/streamfront/log"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitGrace         = 3 * time.Second
)

// ErrExited is returned by commands sent after mpv went away.
var ErrExited = errors.New("mpv exited")

// MPV is one idle mpv process. Media is loaded into it with Load.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	// mu serialises IPC round trips.
	mu sync.Mutex
}

// NewMPV prepares a process handle; binary defaults to "mpv" on $PATH.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{binary: binary, exited: make(chan struct{})}
}

// Start launches mpv idle with a window and waits for its IPC socket.
func (m *MPV) Start(title string, paused bool) error {
	if m.cmd != nil {
		return nil
	}

	m.socketPath = newSocketPath()
	safeTitle := sanitizeTitle(title)

	// Only socket, title and window flags: the user's mpv.conf stays in charge of everything else.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + safeTitle,
		"--title=" + safeTitle,
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
	}
	if paused {
		args = append(args, "--pause")
	}

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: %v", err)
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return ErrExited
		default:
		}

		if conn, err := net.Dial("unix", m.socketPath); err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Load replaces whatever is playing with target.
func (m *MPV) Load(target string) error {
	safe, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	_, err = m.command("loadfile", safe, "replace")
	return err
}

func (m *MPV) SetPause(paused bool) error {
	_, err := m.command("set_property", "pause", paused)
	return err
}

// Exited is closed when the process terminates.
func (m *MPV) Exited() <-chan struct{} {
	return m.exited
}

// Socket is the IPC socket path, empty before Start.
func (m *MPV) Socket() string {
	return m.socketPath
}

// Close asks mpv to quit, kills it if it lingers and removes the socket.
func (m *MPV) Close() error {
	if m.cmd == nil {
		return nil
	}

	select {
	case <-m.exited:
	default:
		_, _ = m.command("quit")
		select {
		case <-m.exited:
		case <-time.After(quitGrace):
			_ = killProcess(m.cmd)
		}
	}

	if err := os.Remove(m.socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove socket: %w", err)
	}
	return nil
}

func (m *MPV) command(args ...any) (any, error) {
	if m.cmd == nil {
		return nil, errors.New("mpv not started")
	}
	select {
	case <-m.exited:
		return nil, ErrExited
	default:
	}
	return m.sendCommand(args...)
}

// newSocketPath keeps sockets out of where.Temp: that directory is wiped on every start-up,
// also while another process is still playing.
func newSocketPath() string {
	return filepath.Join(os.TempDir(), constant.Streamfront+"-mpv-"+uuid.NewString()[:8]+".sock")
}

// sanitizeMediaTarget keeps addresses from being parsed as mpv flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-'")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
