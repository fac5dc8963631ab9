package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/streamfront/streamfront/log"
)

// Event is one asynchronous notification from mpv.
// Property changes have Name "property-change" with Property and Data set.
type Event struct {
	Name      string
	Property  string
	Data      any
	Reason    string
	FileError string
}

// Float returns Data as a number. Unavailable properties arrive as null.
func (e Event) Float() (float64, bool) {
	f, ok := e.Data.(float64)
	return f, ok
}

func (e Event) Bool() (bool, bool) {
	b, ok := e.Data.(bool)
	return b, ok
}

// Observed are the properties every Listener subscribes to.
var Observed = []string{"time-pos", "duration", "pause", "paused-for-cache", "seeking", "eof-reached"}

// Listener holds the persistent connection mpv pushes events on.
// Observers belong to the connection that registered them, so it must stay open.
type Listener struct {
	conn    net.Conn
	handler func(Event)
	done    chan struct{}
	stop    sync.Once
}

// Listen subscribes to Observed and calls handler for every event until Stop or disconnect.
func Listen(socketPath string, handler func(Event)) (*Listener, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range Observed {
		payload, err := encode(nextRequestID(), []any{"observe_property", i + 1, name})
		if err != nil {
			conn.Close()
			return nil, err
		}
		if _, err := conn.Write(payload); err != nil {
			conn.Close()
			return nil, fmt.Errorf("observe %s: %w", name, err)
		}
	}

	l := &Listener{conn: conn, handler: handler, done: make(chan struct{})}
	go l.read()

	log.Debugf("mpv event listener started on %s", socketPath)
	return l, nil
}

func (l *Listener) read() {
	defer close(l.done)

	scanner := bufio.NewScanner(l.conn)
	for scanner.Scan() {
		if e, ok := parseEvent(scanner.Bytes()); ok && l.handler != nil {
			l.handler(e)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %v", err)
	}
}

// Done is closed once the read loop has exited.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Stop closes the connection; the read loop exits on its own.
func (l *Listener) Stop() {
	l.stop.Do(func() {
		_ = l.conn.Close()
	})
}

// parseEvent decodes a line, ignoring command replies and garbage.
func parseEvent(line []byte) (Event, bool) {
	var msg message
	if err := json.Unmarshal(line, &msg); err != nil || msg.Event == "" {
		return Event{}, false
	}
	return Event{
		Name:      msg.Event,
		Property:  msg.Name,
		Data:      msg.Data,
		Reason:    msg.Reason,
		FileError: msg.FileError,
	}, true
}
