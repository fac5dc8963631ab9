package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamfront/streamfront/constant"
)

// fakeMPV answers every command with reply and pushes events to each new connection.
func fakeMPV(t *testing.T, reply func(cmd []any) map[string]any, events ...string) string {
	socket := filepath.Join(t.TempDir(), "mpv.sock")
	ln, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				for _, e := range events {
					_, _ = conn.Write([]byte(e + "\n"))
				}
				scanner := bufio.NewScanner(conn)
				for scanner.Scan() {
					var req request
					if json.Unmarshal(scanner.Bytes(), &req) != nil {
						continue
					}
					resp := reply(req.Command)
					resp["request_id"] = req.RequestID
					out, _ := json.Marshal(resp)
					_, _ = conn.Write(append(out, '\n'))
				}
			}(conn)
		}
	}()

	return socket
}

func TestSocketPath(t *testing.T) {
	Convey("Player sockets", t, func() {
		a, b := newSocketPath(), newSocketPath()

		Convey("Live outside the scratch directory cleared at start-up", func() {
			So(filepath.Dir(a), ShouldEqual, filepath.Clean(os.TempDir()))
			So(strings.HasPrefix(a, filepath.Join(os.TempDir(), constant.Streamfront)+string(filepath.Separator)), ShouldBeFalse)
		})

		Convey("Are unique per player", func() {
			So(a, ShouldNotEqual, b)
			So(filepath.Base(a), ShouldStartWith, constant.Streamfront+"-mpv-")
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Accepts http(s) URLs and local paths", func() {
			u, err := sanitizeMediaTarget("  https://drive.google.com/uc?id=XYZ789 ")
			So(err, ShouldBeNil)
			So(u, ShouldEqual, "https://drive.google.com/uc?id=XYZ789")

			p, err := sanitizeMediaTarget("videos/../clip.mp4")
			So(err, ShouldBeNil)
			So(p, ShouldEqual, "clip.mp4")
		})

		Convey("Rejects flags, control characters and other schemes", func() {
			for _, bad := range []string{"", "--script=evil.lua", "https://a\nb", "file:///etc/passwd", "ytdl://x"} {
				_, err := sanitizeMediaTarget(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})

	Convey("sanitizeTitle flattens whitespace", t, func() {
		So(sanitizeTitle(" Episode\n1\t\x00 "), ShouldEqual, "Episode 1")
	})
}

func TestParseEvent(t *testing.T) {
	Convey("parseEvent", t, func() {
		Convey("Decodes property changes", func() {
			e, ok := parseEvent([]byte(`{"event":"property-change","id":1,"name":"time-pos","data":12.5}`))
			So(ok, ShouldBeTrue)
			So(e.Name, ShouldEqual, "property-change")
			So(e.Property, ShouldEqual, "time-pos")
			f, ok := e.Float()
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, 12.5)
		})

		Convey("Decodes end-file errors", func() {
			e, ok := parseEvent([]byte(`{"event":"end-file","reason":"error","file_error":"loading failed"}`))
			So(ok, ShouldBeTrue)
			So(e.Reason, ShouldEqual, "error")
			So(e.FileError, ShouldEqual, "loading failed")
		})

		Convey("Skips replies and garbage", func() {
			_, ok := parseEvent([]byte(`{"request_id":3,"error":"success","data":null}`))
			So(ok, ShouldBeFalse)
			_, ok = parseEvent([]byte(`not json`))
			So(ok, ShouldBeFalse)
		})

		Convey("Unavailable numbers are not floats", func() {
			e, _ := parseEvent([]byte(`{"event":"property-change","name":"duration","data":null}`))
			_, ok := e.Float()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSendCommand(t *testing.T) {
	Convey("Given a fake mpv socket", t, func() {
		socket := fakeMPV(t, func(cmd []any) map[string]any {
			switch cmd[1] {
			case "duration":
				return map[string]any{"error": "success", "data": 1440.0}
			case "time-pos":
				return map[string]any{"error": "property unavailable"}
			default:
				return map[string]any{"error": "invalid parameter"}
			}
		}, `{"event":"idle"}`)
		m := &MPV{socketPath: socket, exited: make(chan struct{})}

		Convey("Replies are matched past interleaved events", func() {
			data, err := m.sendCommand("get_property", "duration")
			So(err, ShouldBeNil)
			So(data, ShouldEqual, 1440.0)
		})

		Convey("Unavailable properties are reported without retrying", func() {
			_, err := m.sendCommand("get_property", "time-pos")
			So(errors.Is(err, ErrPropertyUnavailable), ShouldBeTrue)
		})

		Convey("Other mpv errors are wrapped", func() {
			_, err := m.sendCommand("get_property", "nope")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid parameter")
		})

		Convey("Commands fail before Start", func() {
			_, err := NewMPV("").command("get_property", "pid")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestListen(t *testing.T) {
	Convey("Given a socket that pushes events", t, func() {
		socket := fakeMPV(t, func([]any) map[string]any {
			return map[string]any{"error": "success"}
		},
			`{"event":"start-file"}`,
			`{"event":"property-change","name":"pause","data":false}`,
		)

		received := make(chan Event, 8)
		l, err := Listen(socket, func(e Event) { received <- e })
		So(err, ShouldBeNil)
		defer l.Stop()

		Convey("Events arrive in order and replies are dropped", func() {
			first := <-received
			So(first.Name, ShouldEqual, "start-file")

			second := <-received
			So(second.Property, ShouldEqual, "pause")
			paused, ok := second.Bool()
			So(ok, ShouldBeTrue)
			So(paused, ShouldBeFalse)

			select {
			case e := <-received:
				So(e.Name, ShouldBeEmpty)
			case <-time.After(100 * time.Millisecond):
			}
		})

		Convey("Stop ends the read loop", func() {
			l.Stop()
			select {
			case <-l.Done():
			case <-time.After(time.Second):
				t.Fatal("listener did not stop")
			}
		})
	})
}
