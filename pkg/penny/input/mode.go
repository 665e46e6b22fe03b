package input

import "go.uber.org/atomic"

// Mode records whether the player is currently driving the UI with the
// pointer or with a controller. Only the Router writes it.
type Mode struct {
	pointer *atomic.Bool
}

// NewMode starts in pointer mode.
func NewMode() *Mode {
	return &Mode{pointer: atomic.NewBool(true)}
}

func (m *Mode) UsingPointer() bool {
	return m.pointer.Load()
}

func (m *Mode) UsingGamepad() bool {
	return !m.pointer.Load()
}

// set stores the mode and reports whether it changed.
func (m *Mode) set(pointer bool) bool {
	return m.pointer.Swap(pointer) != pointer
}
