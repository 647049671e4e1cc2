package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// chromePage drives the tab through chromedp. The tab context is created by
// the Store and shared by every method; Chrome serializes the individual CDP
// commands, so each call is atomic from the caller's perspective.
type chromePage struct {
	ctx context.Context
}

var _ Page = (*chromePage)(nil)

func (p *chromePage) MouseMove(ctx context.Context, x, y float64) error {
	return p.run(ctx, chromedp.MouseEvent(input.MouseMoved, x, y))
}

func (p *chromePage) MouseClick(ctx context.Context, x, y float64) error {
	return p.run(ctx, chromedp.MouseClickXY(x, y))
}

func (p *chromePage) FocusAt(ctx context.Context, x, y float64) (bool, error) {
	expr := fmt.Sprintf(`(() => {
		const el = document.elementFromPoint(%f, %f);
		if (el) { el.focus(); return true; }
		return false;
	})()`, x, y)

	var found bool
	if err := p.run(ctx, chromedp.Evaluate(expr, &found)); err != nil {
		return false, err
	}
	return found, nil
}

func (p *chromePage) InputFocused(ctx context.Context) (bool, error) {
	const expr = `(() => {
		const active = document.activeElement;
		return !!active && (
			active.tagName === 'INPUT' ||
			active.tagName === 'TEXTAREA' ||
			active.isContentEditable
		);
	})()`

	var focused bool
	if err := p.run(ctx, chromedp.Evaluate(expr, &focused)); err != nil {
		return false, err
	}
	return focused, nil
}

// namedKeys maps engine key names to the key runes chromedp's keyboard
// layer understands. A name must resolve to its single rune before
// dispatch: KeyEvent emits one press per rune, so an unresolved name like
// "ArrowDown" would be typed out as literal text. Keys not listed here are
// plain characters and dispatch as themselves.
var namedKeys = map[string]string{
	"Enter":      kb.Enter,
	"Tab":        kb.Tab,
	"Backspace":  kb.Backspace,
	"Delete":     kb.Delete,
	"Escape":     kb.Escape,
	"Insert":     kb.Insert,
	"ArrowUp":    kb.ArrowUp,
	"ArrowDown":  kb.ArrowDown,
	"ArrowLeft":  kb.ArrowLeft,
	"ArrowRight": kb.ArrowRight,
	"Home":       kb.Home,
	"End":        kb.End,
	"PageUp":     kb.PageUp,
	"PageDown":   kb.PageDown,
}

// resolveKey turns a key name into the rune sequence to dispatch.
func resolveKey(key string) string {
	if k, ok := namedKeys[key]; ok {
		return k
	}
	return key
}

func (p *chromePage) PressKey(ctx context.Context, key string) error {
	return p.run(ctx, chromedp.KeyEvent(resolveKey(key)))
}

func (p *chromePage) ScrollBy(ctx context.Context, dx, dy float64) error {
	expr := fmt.Sprintf(`(() => { window.scrollBy(%f, %f); return true; })()`, dx, dy)
	var ok bool
	return p.run(ctx, chromedp.Evaluate(expr, &ok))
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	return p.run(ctx, chromedp.Navigate(url))
}

func (p *chromePage) History(ctx context.Context) (int, int, error) {
	var index, length int
	err := p.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		current, entries, err := page.GetNavigationHistory().Do(ctx)
		if err != nil {
			return err
		}
		index = int(current)
		length = len(entries)
		return nil
	}))
	if err != nil {
		return 0, 0, err
	}
	return index, length, nil
}

func (p *chromePage) NavigateBack(ctx context.Context) error {
	return p.run(ctx, chromedp.NavigateBack())
}

func (p *chromePage) NavigateForward(ctx context.Context) error {
	return p.run(ctx, chromedp.NavigateForward())
}

func (p *chromePage) Screenshot(ctx context.Context, quality int) ([]byte, error) {
	var buf []byte
	err := p.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, err = page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatJpeg).
			WithQuality(int64(quality)).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *chromePage) PDF(ctx context.Context) ([]byte, error) {
	var buf []byte
	err := p.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *chromePage) Content(ctx context.Context) (string, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

func (p *chromePage) Title(ctx context.Context) (string, error) {
	var title string
	if err := p.run(ctx, chromedp.Title(&title)); err != nil {
		return "", err
	}
	return title, nil
}

// run executes actions on the tab context while honoring the caller's
// deadline and cancellation.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := mergeContext(p.ctx, ctx)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

// mergeContext returns the tab context bounded by the caller context's
// lifetime. chromedp actions must run on the tab context to reach the
// browser, but a hung engine call should still respect the caller's
// deadline.
func mergeContext(tab, caller context.Context) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(tab)
	stop := context.AfterFunc(caller, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}
