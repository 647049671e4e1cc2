package model

import "errors"

var (
	// ErrNotInitialized is returned when a command arrives before the
	// browser session has been created, or after it was torn down.
	ErrNotInitialized = errors.New("browser session not initialized")

	// ErrCoordinateOutOfRange is returned when a pointer coordinate is
	// outside the normalized [0,1] range.
	ErrCoordinateOutOfRange = errors.New("coordinate must be in [0,1]")

	// ErrDeltaRequired is returned when a scroll command is missing a delta.
	ErrDeltaRequired = errors.New("scroll deltas are required")

	// ErrKeyRequired is returned when a keyboard command is missing the key.
	ErrKeyRequired = errors.New("key is required")

	// ErrURLRequired is returned when a goto command is missing the URL.
	ErrURLRequired = errors.New("url is required")
)
