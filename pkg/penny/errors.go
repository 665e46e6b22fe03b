package penny

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotInitialized is returned when an Engine is used before New
	// succeeded or after Close.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrStopped is returned by Run when the engine was stopped before the
	// loop started.
	ErrStopped = errors.New("engine stopped")

	// ErrAlreadyRunning is returned by a second concurrent Run.
	ErrAlreadyRunning = errors.New("engine already running")
)

// InfrastructureError represents a failure of the engine itself: SDL could
// not start, the window could not be created or the configuration could not
// be read. The UI core never returns one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "sdl_init", "load_options")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("penny: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("penny: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
