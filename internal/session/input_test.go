package session

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/remote-browser-stream/backend/internal/browser"
	"github.com/remote-browser-stream/backend/internal/model"
)

type point struct {
	x, y float64
}

// fakePage records every engine call so tests can assert exactly what
// reached the page and in which coordinates.
type fakePage struct {
	moves    []point
	clicks   []point
	focusAts []point
	scrolls  []point
	keys     []string
	gotos    []string

	focusFound   bool
	inputFocused bool

	histIndex int
	histLen   int
	histReads int
	backs     int
	forwards  int

	screenshots int
	frame       []byte

	err error
}

var _ browser.Page = (*fakePage)(nil)

func (p *fakePage) MouseMove(_ context.Context, x, y float64) error {
	if p.err != nil {
		return p.err
	}
	p.moves = append(p.moves, point{x, y})
	return nil
}

func (p *fakePage) MouseClick(_ context.Context, x, y float64) error {
	if p.err != nil {
		return p.err
	}
	p.clicks = append(p.clicks, point{x, y})
	return nil
}

func (p *fakePage) FocusAt(_ context.Context, x, y float64) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	p.focusAts = append(p.focusAts, point{x, y})
	return p.focusFound, nil
}

func (p *fakePage) InputFocused(_ context.Context) (bool, error) {
	return p.inputFocused, nil
}

func (p *fakePage) PressKey(_ context.Context, key string) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, key)
	return nil
}

func (p *fakePage) ScrollBy(_ context.Context, dx, dy float64) error {
	if p.err != nil {
		return p.err
	}
	p.scrolls = append(p.scrolls, point{dx, dy})
	return nil
}

func (p *fakePage) Navigate(_ context.Context, url string) error {
	if p.err != nil {
		return p.err
	}
	p.gotos = append(p.gotos, url)
	return nil
}

func (p *fakePage) History(_ context.Context) (int, int, error) {
	if p.err != nil {
		return 0, 0, p.err
	}
	p.histReads++
	return p.histIndex, p.histLen, nil
}

func (p *fakePage) NavigateBack(_ context.Context) error {
	if p.err != nil {
		return p.err
	}
	p.backs++
	if p.histIndex > 0 {
		p.histIndex--
	}
	return nil
}

func (p *fakePage) NavigateForward(_ context.Context) error {
	if p.err != nil {
		return p.err
	}
	p.forwards++
	if p.histIndex < p.histLen-1 {
		p.histIndex++
	}
	return nil
}

func (p *fakePage) Screenshot(_ context.Context, _ int) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.screenshots++
	return p.frame, nil
}

func (p *fakePage) PDF(_ context.Context) ([]byte, error) {
	return []byte("%PDF-"), p.err
}

func (p *fakePage) Content(_ context.Context) (string, error) {
	return "<html></html>", p.err
}

func (p *fakePage) Title(_ context.Context) (string, error) {
	return "fake", p.err
}

// fakeProvider serves a fixed page and viewport.
type fakeProvider struct {
	page   browser.Page
	err    error
	width  int
	height int
}

func (f *fakeProvider) Current() (browser.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeProvider) Viewport() (int, int) {
	return f.width, f.height
}

func newTestManager(page *fakePage) *Manager {
	return NewManager(&fakeProvider{page: page, width: 1280, height: 800})
}

func TestManager_Hover(t *testing.T) {
	ctx := context.Background()

	t.Run("moves pointer only", func(t *testing.T) {
		page := &fakePage{}
		manager := newTestManager(page)

		result, err := manager.Hover(ctx, 0.25, 0.5)
		if err != nil {
			t.Fatalf("Hover failed: %v", err)
		}
		if !result.Success {
			t.Error("Expected success")
		}
		if len(page.moves) != 1 || page.moves[0] != (point{320, 400}) {
			t.Errorf("Expected single move to (320,400), got %v", page.moves)
		}
		if len(page.clicks) != 0 || len(page.focusAts) != 0 {
			t.Error("Hover must not click or focus")
		}
	})

	t.Run("not initialized", func(t *testing.T) {
		manager := NewManager(&fakeProvider{err: model.ErrNotInitialized, width: 1280, height: 800})

		_, err := manager.Hover(ctx, 0.5, 0.5)
		if !errors.Is(err, model.ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized, got %v", err)
		}
	})

	t.Run("engine fault propagates", func(t *testing.T) {
		page := &fakePage{err: errors.New("target crashed")}
		manager := newTestManager(page)

		_, err := manager.Hover(ctx, 0.5, 0.5)
		if err == nil {
			t.Fatal("Expected error")
		}
	})
}

func TestManager_Click(t *testing.T) {
	ctx := context.Background()

	t.Run("center click hits (640,400)", func(t *testing.T) {
		page := &fakePage{focusFound: true}
		manager := newTestManager(page)

		result, err := manager.Click(ctx, 0.5, 0.5)
		if err != nil {
			t.Fatalf("Click failed: %v", err)
		}
		if len(page.clicks) != 1 || page.clicks[0] != (point{640, 400}) {
			t.Errorf("Expected click at (640,400), got %v", page.clicks)
		}
		if result.Focused == nil || !*result.Focused {
			t.Error("Expected focused=true in result")
		}
	})

	t.Run("focus lookup uses the click pixel", func(t *testing.T) {
		page := &fakePage{}
		manager := newTestManager(page)

		result, err := manager.Click(ctx, 0.0, 1.0)
		if err != nil {
			t.Fatalf("Click failed: %v", err)
		}
		if len(page.focusAts) != 1 || page.focusAts[0] != (point{0, 800}) {
			t.Errorf("Expected focus lookup at (0,800), got %v", page.focusAts)
		}
		if result.Focused == nil || *result.Focused {
			t.Error("Expected focused=false when nothing is at the point")
		}
	})
}

func TestManager_TypeKey(t *testing.T) {
	ctx := context.Background()

	t.Run("no input focused is a soft failure", func(t *testing.T) {
		page := &fakePage{inputFocused: false}
		manager := newTestManager(page)

		result, err := manager.TypeKey(ctx, "a")
		if err != nil {
			t.Fatalf("TypeKey returned a hard error: %v", err)
		}
		if result.Success {
			t.Error("Expected success=false")
		}
		if result.Error == "" {
			t.Error("Expected an explanatory message")
		}
		if len(page.keys) != 0 {
			t.Errorf("Expected zero key dispatches, got %d", len(page.keys))
		}
	})

	t.Run("dispatches one press when input focused", func(t *testing.T) {
		page := &fakePage{inputFocused: true}
		manager := newTestManager(page)

		result, err := manager.TypeKey(ctx, "Enter")
		if err != nil {
			t.Fatalf("TypeKey failed: %v", err)
		}
		if !result.Success {
			t.Error("Expected success")
		}
		if len(page.keys) != 1 || page.keys[0] != "Enter" {
			t.Errorf("Expected single Enter press, got %v", page.keys)
		}
	})
}

func TestManager_Scroll(t *testing.T) {
	page := &fakePage{}
	manager := newTestManager(page)

	result, err := manager.Scroll(context.Background(), 0.5, -0.25)
	if err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if !result.Success {
		t.Error("Expected success")
	}
	if len(page.scrolls) != 1 || page.scrolls[0] != (point{640, -200}) {
		t.Errorf("Expected scroll by (640,-200), got %v", page.scrolls)
	}
}

// For all normalized coordinates the pixel target equals exactly
// (x*width, y*height) with the configured 1280x800 viewport.
func TestCoordinateTranslationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("click target equals (x*1280, y*800) exactly", prop.ForAll(
		func(x, y float64) bool {
			page := &fakePage{}
			manager := newTestManager(page)

			if _, err := manager.Click(context.Background(), x, y); err != nil {
				return false
			}
			if len(page.clicks) != 1 {
				return false
			}
			return page.clicks[0].x == x*1280 && page.clicks[0].y == y*800
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.Property("hover target equals (x*1280, y*800) exactly", prop.ForAll(
		func(x, y float64) bool {
			page := &fakePage{}
			manager := newTestManager(page)

			if _, err := manager.Hover(context.Background(), x, y); err != nil {
				return false
			}
			if len(page.moves) != 1 {
				return false
			}
			return page.moves[0].x == x*1280 && page.moves[0].y == y*800
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
