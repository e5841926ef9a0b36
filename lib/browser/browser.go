package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
)

// Handle owns one Chrome instance and one tab. It is acquired for a
// single run and must be closed on every exit path, including early
// fatal errors.
type Handle struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

type Options struct {
	// profile directory, created if absent
	UserDataDir string
	UserAgent   string
	Headless    bool
	Width       int
	Height      int
}

func Launch(ctx context.Context, opts Options) (*Handle, error) {
	if opts.Width == 0 {
		opts.Width = 1440
	}
	if opts.Height == 0 {
		opts.Height = 900
	}
	err := os.MkdirAll(opts.UserDataDir, 0755)
	if err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserDataDir(opts.UserDataDir),
		chromedp.WindowSize(opts.Width, opts.Height),
		// restricted container environments have no usable kernel sandbox
		chromedp.NoSandbox,
		chromedp.Flag("headless", opts.Headless),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(
		allocCtx,
		// protocol failures surface here instead of through a handler
		// event stream, they kill the tab context on their own
		chromedp.WithErrorf(func(format string, args ...any) {
			slog.Error("browser protocol error", "msg", fmt.Sprintf(format, args...))
		}),
	)

	// spawns the browser process before the first action needs it
	err = chromedp.Run(tabCtx)
	if err != nil {
		tabCancel()
		allocCancel()
		return nil, err
	}

	return &Handle{
		ctx:         tabCtx,
		cancel:      tabCancel,
		allocCancel: allocCancel,
	}, nil
}

// Navigate opens the url and waits for the page load to settle, or for
// `patience` to run out, whichever comes first. Running out of patience
// is not an error: SSO entry pages redirect mid-load and never settle.
func (h *Handle) Navigate(url string, patience time.Duration) error {
	ctx, cancel := context.WithTimeout(h.ctx, patience)
	defer cancel()

	err := chromedp.Run(ctx, chromedp.Navigate(url))
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (h *Handle) Location() (string, error) {
	var current string
	err := chromedp.Run(h.ctx, chromedp.Location(&current))
	return current, err
}

// WaitForURL polls the current location every 100ms until it equals
// `target` or `timeout` elapses. Reports whether the target was reached,
// a timeout is not an error.
func (h *Handle) WaitForURL(target string, timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		current, err := h.Location()
		if err != nil {
			return false, err
		}
		if current == target {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-h.ctx.Done():
			return false, h.ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// HasElement reports whether a node matching the css selector is
// currently present, without waiting for one to appear.
func (h *Handle) HasElement(selector string) (bool, error) {
	var nodes []*cdp.Node
	err := chromedp.Run(h.ctx, chromedp.Nodes(
		selector, &nodes,
		chromedp.ByQuery, chromedp.AtLeast(0),
	))
	if err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

func (h *Handle) Type(selector, text string) error {
	return chromedp.Run(h.ctx,
		chromedp.Click(selector, chromedp.ByQuery),
		chromedp.SendKeys(selector, text, chromedp.ByQuery),
	)
}

func (h *Handle) Click(selector string) error {
	return chromedp.Run(h.ctx, chromedp.Click(selector, chromedp.ByQuery))
}

// Cookie reads a cookie by name from the browser's jar.
func (h *Handle) Cookie(name string) (value string, found bool, err error) {
	var cookies []*network.Cookie
	err = chromedp.Run(h.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		cookies, err = storage.GetCookies().Do(ctx)
		return err
	}))
	if err != nil {
		return "", false, err
	}

	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value, true, nil
		}
	}
	return "", false, nil
}

func (h *Handle) Close() {
	if err := chromedp.Cancel(h.ctx); err != nil {
		slog.Warn("browser did not shut down cleanly", "err", err)
	}
	h.cancel()
	h.allocCancel()
}
