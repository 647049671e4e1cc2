// Package session translates normalized input commands into viewport-pixel
// actions on the shared browser page and guards navigation transitions.
package session

import (
	"context"
	"fmt"

	"github.com/remote-browser-stream/backend/internal/browser"
)

// PageProvider resolves the current page handle and the fixed viewport
// dimensions. *browser.Store satisfies it; tests substitute a stub.
type PageProvider interface {
	Current() (browser.Page, error)
	Viewport() (width, height int)
}

// FrameQuality is the JPEG quality factor used for streamed frames.
const FrameQuality = 70

// Manager is the command core. Every command resolves the page through the
// provider, so a session that has not completed initialization fails with
// ErrNotInitialized before any engine call is attempted.
type Manager struct {
	pages PageProvider
}

// NewManager creates a Manager on top of a page provider.
func NewManager(pages PageProvider) *Manager {
	return &Manager{pages: pages}
}

// page resolves the current page handle.
func (m *Manager) page() (browser.Page, error) {
	return m.pages.Current()
}

// pixels converts normalized [0,1] coordinates to viewport pixels. No
// component downstream of this package ever sees normalized coordinates.
func (m *Manager) pixels(x, y float64) (px, py float64) {
	w, h := m.pages.Viewport()
	return x * float64(w), y * float64(h)
}

// CaptureFrame captures one compressed frame of the current page rendering.
// It backs the per-connection broadcast loops.
func (m *Manager) CaptureFrame(ctx context.Context) ([]byte, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}
	frame, err := p.Screenshot(ctx, FrameQuality)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	return frame, nil
}

// PDF renders the current page to a PDF document.
func (m *Manager) PDF(ctx context.Context) ([]byte, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}
	data, err := p.PDF(ctx)
	if err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	return data, nil
}

// Content returns the full HTML of the current document.
func (m *Manager) Content(ctx context.Context) (string, error) {
	p, err := m.page()
	if err != nil {
		return "", err
	}
	html, err := p.Content(ctx)
	if err != nil {
		return "", fmt.Errorf("content read failed: %w", err)
	}
	return html, nil
}

// Title returns the current document title.
func (m *Manager) Title(ctx context.Context) (string, error) {
	p, err := m.page()
	if err != nil {
		return "", err
	}
	title, err := p.Title(ctx)
	if err != nil {
		return "", fmt.Errorf("title read failed: %w", err)
	}
	return title, nil
}
