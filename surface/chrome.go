package surface

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/streamfront/streamfront/playback"
)

// ChromeFrame shows preview and embed pages in a visible Chrome window driven over CDP.
// The page's load event is its success signal; navigation failures and HTTP errors on
// the document are its error signal.
type ChromeFrame struct {
	ExecPath string
	Width    int
	Height   int

	mu     sync.Mutex
	cancel context.CancelFunc
}

func (c *ChromeFrame) options() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("mute-audio", false),
		chromedp.Flag("hide-scrollbars", false),
		chromedp.Flag("autoplay-policy", "no-user-gesture-required"),
	)
	if c.Width > 0 && c.Height > 0 {
		opts = append(opts, chromedp.WindowSize(c.Width, c.Height))
	}
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}
	return opts
}

func (c *ChromeFrame) Load(address string, emit playback.Emit) error {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), c.options()...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)

	c.mu.Lock()
	c.cancel = func() {
		cancelCtx()
		cancelAlloc()
	}
	c.mu.Unlock()

	var once sync.Once
	report := func(sig playback.Signal) {
		once.Do(func() { emit(sig) })
	}

	chromedp.ListenTarget(ctx, targetListener(report))

	go func() {
		if err := chromedp.Run(ctx, network.Enable(), chromedp.Navigate(address)); err != nil && ctx.Err() == nil {
			report(playback.Signal{Kind: playback.SignalError, Err: fmt.Errorf("frame navigate: %w", err)})
		}
	}()
	return nil
}

// targetListener maps CDP events onto signals. report runs on its own goroutine:
// it may close the frame, and chromedp listeners must not block.
func targetListener(report func(playback.Signal)) func(ev any) {
	return func(ev any) {
		switch e := ev.(type) {
		case *network.EventResponseReceived:
			if e.Type == network.ResourceTypeDocument && e.Response != nil && e.Response.Status >= 400 {
				go report(playback.Signal{
					Kind: playback.SignalError,
					Err:  fmt.Errorf("frame %s: HTTP %d", e.Response.URL, e.Response.Status),
				})
			}
		case *page.EventLoadEventFired:
			go report(playback.Signal{Kind: playback.SignalLoad})
		}
	}
}

// Play is a no-op: embedded players keep their own controls.
func (c *ChromeFrame) Play() error { return nil }

// Pause is a no-op: embedded players keep their own controls.
func (c *ChromeFrame) Pause() error { return nil }

// Close shuts the browser down.
func (c *ChromeFrame) Close() error {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return nil
}
