// Package surface provides the rendering surfaces playback sessions drive:
// mpv for native addresses and a browser window for preview and embed pages.
package surface

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamfront/streamfront/key"
	"github.com/streamfront/streamfront/playback"
	"github.com/streamfront/streamfront/source"
)

// Frame backends.
const (
	BackendChrome  = "chrome"
	BackendBrowser = "browser"
)

// Backends lists the accepted values of frame.backend.
func Backends() []string {
	return []string{BackendChrome, BackendBrowser}
}

// Factory builds surfaces for candidates.
type Factory struct {
	Title        string
	Player       string
	Autoplay     bool
	FrameBackend string
	Browser      string
	Width        int
	Height       int
}

// FromConfig reads the playback and frame settings.
func FromConfig(title string) *Factory {
	return &Factory{
		Title:        title,
		Player:       viper.GetString(key.PlaybackNative),
		Autoplay:     viper.GetBool(key.PlaybackAutoplay),
		FrameBackend: viper.GetString(key.FrameBackend),
		Browser:      viper.GetString(key.FrameBrowser),
		Width:        viper.GetInt(key.FrameWidth),
		Height:       viper.GetInt(key.FrameHeight),
	}
}

func (f *Factory) Surface(c source.Candidate) (playback.Surface, error) {
	if c.Mode == source.Native {
		return &Native{Binary: f.Player, Title: f.Title, Autoplay: f.Autoplay}, nil
	}

	switch f.FrameBackend {
	case BackendChrome, "":
		return &ChromeFrame{ExecPath: f.Browser, Width: f.Width, Height: f.Height}, nil
	case BackendBrowser:
		return &BrowserFrame{Browser: f.Browser}, nil
	default:
		return nil, fmt.Errorf("unknown frame backend %q, expected one of %v", f.FrameBackend, Backends())
	}
}
