package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// request is one mpv JSON IPC command line.
type request struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// message is anything mpv writes back: a reply carries request_id, an event carries event.
type message struct {
	RequestID int64  `json:"request_id"`
	Error     string `json:"error"`
	Data      any    `json:"data"`
	Event     string `json:"event"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
	FileError string `json:"file_error"`
}

// ErrPropertyUnavailable is returned while mpv has nothing loaded.
var ErrPropertyUnavailable = errors.New("property unavailable")

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = time.Second
)

var requestIDs atomic.Int64

func nextRequestID() int64 {
	return requestIDs.Add(1)
}

func encode(id int64, command []any) ([]byte, error) {
	payload, err := json.Marshal(request{Command: command, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return append(payload, '\n'), nil
}

// replyError maps mpv's error field to a Go error.
func replyError(m message) error {
	switch m.Error {
	case "", "success":
		return nil
	case ErrPropertyUnavailable.Error():
		return ErrPropertyUnavailable
	default:
		return fmt.Errorf("mpv: %s", m.Error)
	}
}

// sendCommand runs one command on a short-lived connection, retrying transient failures.
func (m *MPV) sendCommand(command ...any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		data, err := roundTrip(m.socketPath, command)
		if err == nil || errors.Is(err, ErrPropertyUnavailable) {
			return data, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc %v failed after %d attempts: %w", command[0], maxRetries, lastErr)
}

func roundTrip(socketPath string, command []any) (any, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	id := nextRequestID()
	payload, err := encode(id, command)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	// mpv may interleave events with the reply; skip until ours arrives.
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		if msg.Event != "" || msg.RequestID != id {
			continue
		}
		return msg.Data, replyError(msg)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return nil, errors.New("read: connection closed before reply")
}
