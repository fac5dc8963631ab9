package surface

import (
	"github.com/streamfront/streamfront/open"
	"github.com/streamfront/streamfront/playback"
)

// BrowserFrame hands the page to the system browser.
// There is no way back from it, so a successful launch counts as loaded.
type BrowserFrame struct {
	Browser string
	start   func(address, app string) error
}

func (b *BrowserFrame) Load(address string, emit playback.Emit) error {
	start := b.start
	if start == nil {
		start = open.StartWith
	}
	if err := start(address, b.Browser); err != nil {
		return err
	}
	emit(playback.Signal{Kind: playback.SignalLoad})
	return nil
}

func (b *BrowserFrame) Play() error  { return nil }
func (b *BrowserFrame) Pause() error { return nil }
func (b *BrowserFrame) Close() error { return nil }
