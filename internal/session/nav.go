package session

import (
	"context"
	"fmt"

	"github.com/remote-browser-stream/backend/internal/model"
)

// Goto navigates the page to the URL and returns once the engine signals
// completion. Engine faults propagate; they are not retried.
func (m *Manager) Goto(ctx context.Context, url string) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	if err := p.Navigate(ctx, url); err != nil {
		return nil, fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return model.OK(), nil
}

// Back navigates one entry back in history. When the page is already at the
// first entry the guard returns a soft failure and no navigation is issued.
func (m *Manager) Back(ctx context.Context) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	index, _, err := p.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("history read failed: %w", err)
	}
	if index <= 0 {
		return model.SoftFail("no previous page in history"), nil
	}

	if err := p.NavigateBack(ctx); err != nil {
		return nil, fmt.Errorf("back navigation failed: %w", err)
	}
	return model.OK(), nil
}

// Forward navigates one entry forward in history. The availability check is
// a pure read of the navigation history; it must not move the page as a
// side effect of checking.
func (m *Manager) Forward(ctx context.Context) (*model.CommandResult, error) {
	p, err := m.page()
	if err != nil {
		return nil, err
	}

	index, length, err := p.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("history read failed: %w", err)
	}
	if index >= length-1 {
		return model.SoftFail("no next page in history"), nil
	}

	if err := p.NavigateForward(ctx); err != nil {
		return nil, fmt.Errorf("forward navigation failed: %w", err)
	}
	return model.OK(), nil
}
