package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/chromedp"

	"github.com/remote-browser-stream/backend/internal/model"
)

// Config holds the Store configuration.
type Config struct {
	Width    int
	Height   int
	StartURL string
	Headless bool
}

const (
	// DefaultWidth and DefaultHeight are the fixed viewport dimensions.
	DefaultWidth  = 1280
	DefaultHeight = 800

	// DefaultStartURL is the blank document the page opens on.
	DefaultStartURL = "about:blank"
)

// Store owns the browser process, its context and the single controlled
// tab. Resources are acquired in Initialize and released in Teardown in
// reverse order; Current is the only way other packages reach the page.
type Store struct {
	cfg Config

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCancel context.CancelFunc
	tabCancel     context.CancelFunc
	page          Page
}

// NewStore creates a Store with defaults applied for zero-value fields.
func NewStore(cfg Config) *Store {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.StartURL == "" {
		cfg.StartURL = DefaultStartURL
	}
	return &Store{cfg: cfg}
}

// Initialize launches the browser, creates the tab, applies the viewport and
// navigates to the start URL. On any failure the resources acquired so far
// are released and the error is returned; the process cannot serve without
// a completed initialization.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page != nil {
		return fmt.Errorf("browser session already initialized")
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.NoSandbox,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	tabCtx, tabCancel := chromedp.NewContext(browserCtx)

	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(s.cfg.Width), int64(s.cfg.Height)),
		chromedp.Navigate(s.cfg.StartURL),
	)
	if err != nil {
		tabCancel()
		browserCancel()
		allocCancel()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	s.allocCancel = allocCancel
	s.browserCancel = browserCancel
	s.tabCancel = tabCancel
	s.page = &chromePage{ctx: tabCtx}
	return nil
}

// Current returns the page handle, or ErrNotInitialized if the session has
// not completed initialization or was torn down.
func (s *Store) Current() (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page == nil {
		return nil, model.ErrNotInitialized
	}
	return s.page, nil
}

// Viewport returns the fixed viewport dimensions in pixels.
func (s *Store) Viewport() (width, height int) {
	return s.cfg.Width, s.cfg.Height
}

// Teardown releases the tab, the browser and the allocator in reverse
// acquisition order. It is idempotent and tolerates partial initialization:
// steps whose resource was never acquired are skipped.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tabCancel != nil {
		s.tabCancel()
		s.tabCancel = nil
	}
	if s.browserCancel != nil {
		s.browserCancel()
		s.browserCancel = nil
	}
	if s.allocCancel != nil {
		s.allocCancel()
		s.allocCancel = nil
	}
	s.page = nil
}
