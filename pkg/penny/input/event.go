// Package input turns raw platform events into routed listener callbacks.
//
// A Router receives every platform event once per frame and fans it out by
// capability: key listeners, mouse listeners, and (through the Gamepad layer)
// gamepad listeners. The Gamepad layer maps raw controller buttons and axes to
// logical buttons and synthesizes discrete press and release edges for the
// triggers and the D-pad, which most drivers report as continuous axes.
package input

// Event is a raw platform event, already decoupled from the windowing backend.
type Event interface {
	isEvent()
}

// Key identifies a keyboard key. Keys the framework does not name are
// reported as KeyUnknown with the backend's code in KeyEvent.Code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeySpace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// TextEvent carries one entered character. Backspace is delivered as '\b'.
type TextEvent struct {
	Char rune
}

type KeyEvent struct {
	Key     Key
	Code    int32
	Pressed bool
}

// MouseButtonEvent carries window-space coordinates.
type MouseButtonEvent struct {
	X, Y    int
	Button  MouseButton
	Pressed bool
}

type MouseMoveEvent struct {
	X, Y int
}

type MouseWheelEvent struct {
	DX, DY float32
}

type JoystickConnectedEvent struct {
	Device int
}

type JoystickDisconnectedEvent struct {
	Device int
}

// JoystickAxisEvent carries a raw axis index and its position normalised to
// [-100, 100].
type JoystickAxisEvent struct {
	Device   int
	Axis     int
	Position float32
}

// JoystickButtonEvent carries a raw button index.
type JoystickButtonEvent struct {
	Device  int
	Button  int
	Pressed bool
}

// QuitEvent is produced when the platform asks the application to exit. The
// router ignores it; the engine loop consumes it.
type QuitEvent struct{}

func (TextEvent) isEvent()                 {}
func (KeyEvent) isEvent()                  {}
func (MouseButtonEvent) isEvent()          {}
func (MouseMoveEvent) isEvent()            {}
func (MouseWheelEvent) isEvent()           {}
func (JoystickConnectedEvent) isEvent()    {}
func (JoystickDisconnectedEvent) isEvent() {}
func (JoystickAxisEvent) isEvent()         {}
func (JoystickButtonEvent) isEvent()       {}
func (QuitEvent) isEvent()                 {}
