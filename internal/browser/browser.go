// Package browser owns the single headless browser page controlled by this
// process. The Store acquires and releases the underlying Chrome resources;
// no other package constructs or destroys the page.
package browser

import "context"

// Page is the pixel-level surface of the controlled browser tab. All
// coordinates are viewport pixels; normalization to [0,1] fractions happens
// one layer up and never reaches this interface.
type Page interface {
	// MouseMove moves the pointer without pressing a button.
	MouseMove(ctx context.Context, x, y float64) error

	// MouseClick presses and releases the primary button at the position.
	MouseClick(ctx context.Context, x, y float64) error

	// FocusAt finds the topmost element at the position and focuses it.
	// The lookup and the focus run as one round-trip to the page; the
	// returned bool reports whether an element was found.
	FocusAt(ctx context.Context, x, y float64) (bool, error)

	// InputFocused reports whether the page's active element accepts text
	// input (text input, text area, or an editable region).
	InputFocused(ctx context.Context) (bool, error)

	// PressKey dispatches a single key press to the focused element.
	PressKey(ctx context.Context, key string) error

	// ScrollBy scrolls the viewport by the given pixel deltas.
	ScrollBy(ctx context.Context, dx, dy float64) error

	// Navigate loads the URL and returns once the page signals completion.
	Navigate(ctx context.Context, url string) error

	// History returns the current entry index and the number of entries in
	// the page's navigation history. It is a pure read and must not alter
	// navigation state.
	History(ctx context.Context) (index, length int, err error)

	// NavigateBack moves one entry back in history.
	NavigateBack(ctx context.Context) error

	// NavigateForward moves one entry forward in history.
	NavigateForward(ctx context.Context) error

	// Screenshot captures the viewport as a JPEG at the given quality.
	Screenshot(ctx context.Context, quality int) ([]byte, error)

	// PDF renders the current page to a PDF document.
	PDF(ctx context.Context) ([]byte, error)

	// Content returns the full HTML of the current document.
	Content(ctx context.Context) (string, error)

	// Title returns the current document title.
	Title(ctx context.Context) (string, error)
}
