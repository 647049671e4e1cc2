// Package model defines the command payloads, results and sentinel errors
// shared between the HTTP layer and the session core.
package model

// PointerPayload carries a normalized pointer position for hover and click
// commands. Coordinates are fractions of the viewport in [0,1]; they are
// converted to pixels by the session layer, never here.
type PointerPayload struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

// Validate checks that both coordinates are present and normalized.
func (p *PointerPayload) Validate() error {
	if p.X == nil || p.Y == nil {
		return ErrCoordinateOutOfRange
	}
	if *p.X < 0 || *p.X > 1 || *p.Y < 0 || *p.Y > 1 {
		return ErrCoordinateOutOfRange
	}
	return nil
}

// ScrollPayload carries relative scroll deltas as fractions of the viewport.
// Deltas may be negative and are not clamped to [0,1].
type ScrollPayload struct {
	DX *float64 `json:"dx" binding:"required"`
	DY *float64 `json:"dy" binding:"required"`
}

// Validate checks that both deltas are present.
func (p *ScrollPayload) Validate() error {
	if p.DX == nil || p.DY == nil {
		return ErrDeltaRequired
	}
	return nil
}

// KeyboardPayload carries a single key press, named the way the browser
// engine names keys ("a", "Enter", "Backspace", ...).
type KeyboardPayload struct {
	Key string `json:"key" binding:"required"`
}

// Validate checks that the key is present.
func (p *KeyboardPayload) Validate() error {
	if p.Key == "" {
		return ErrKeyRequired
	}
	return nil
}

// GotoPayload carries the target URL for a navigation command.
type GotoPayload struct {
	URL string `json:"url" binding:"required"`
}

// Validate checks that the URL is present.
func (p *GotoPayload) Validate() error {
	if p.URL == "" {
		return ErrURLRequired
	}
	return nil
}

// CommandResult is the envelope every command returns. A soft failure (an
// expected negative outcome such as "no input focused" or "no previous
// page") is encoded as Success=false with Error set, and travels as normal
// data rather than as a Go error.
type CommandResult struct {
	Success bool   `json:"success"`
	Focused *bool  `json:"focused,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK returns a plain successful result.
func OK() *CommandResult {
	return &CommandResult{Success: true}
}

// Focused returns a successful click result reporting whether an element
// was found and focused at the click point.
func Focused(found bool) *CommandResult {
	return &CommandResult{Success: true, Focused: &found}
}

// SoftFail returns an expected-failure result with an explanatory message.
func SoftFail(msg string) *CommandResult {
	return &CommandResult{Success: false, Error: msg}
}
