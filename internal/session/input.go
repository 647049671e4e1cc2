package session

import (
	"context"
	"fmt"

	"github.com/remote-browser-stream/backend/internal/model"
)

// Hover moves the pointer to the normalized position. It issues a pointer
// move only; nothing is pressed or focused.
func (m *Manager) Hover(ctx context.Context, x, y float64) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	px, py := m.pixels(x, y)
	if err := p.MouseMove(ctx, px, py); err != nil {
		return nil, fmt.Errorf("hover failed: %w", err)
	}
	return model.OK(), nil
}

// Click clicks at the normalized position, then focuses the topmost element
// at that point in a single round-trip. Whether a focus target was found is
// reported back to the caller.
func (m *Manager) Click(ctx context.Context, x, y float64) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	px, py := m.pixels(x, y)
	if err := p.MouseClick(ctx, px, py); err != nil {
		return nil, fmt.Errorf("click failed: %w", err)
	}

	found, err := p.FocusAt(ctx, px, py)
	if err != nil {
		return nil, fmt.Errorf("focus lookup failed: %w", err)
	}
	return model.Focused(found), nil
}

// TypeKey dispatches one key press to the focused element. When no
// input-like element holds focus, the press is not dispatched and a soft
// failure is returned; this is an expected outcome, not a fault.
func (m *Manager) TypeKey(ctx context.Context, key string) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	focused, err := p.InputFocused(ctx)
	if err != nil {
		return nil, fmt.Errorf("focus check failed: %w", err)
	}
	if !focused {
		return model.SoftFail("no input element is focused"), nil
	}

	if err := p.PressKey(ctx, key); err != nil {
		return nil, fmt.Errorf("key press failed: %w", err)
	}
	return model.OK(), nil
}

// Scroll scrolls the viewport by the normalized deltas, converted to pixel
// deltas against the viewport dimensions.
func (m *Manager) Scroll(ctx context.Context, dx, dy float64) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	pdx, pdy := m.pixels(dx, dy)
	if err := p.ScrollBy(ctx, pdx, pdy); err != nil {
		return nil, fmt.Errorf("scroll failed: %w", err)
	}
	return model.OK(), nil
}
