package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFrameSize = errors.New("renderer: frame width and height must be positive")
	ErrNoMonitors       = errors.New("renderer: no monitors detected")
)

// ContextInitError is returned when the window or graphics context cannot
// be created.
type ContextInitError struct {
	Stage string
	Err   error
}

func (e *ContextInitError) Error() string {
	return fmt.Sprintf("renderer: %s failed: %s", e.Stage, e.Err)
}

func (e *ContextInitError) Unwrap() error {
	return e.Err
}
