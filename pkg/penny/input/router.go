package input

import (
	"fmt"
	"log/slog"

	"github.com/pennyengine/penny/pkg/penny/internal/logging"
)

// Cursor toggles the platform pointer's visibility.
type Cursor interface {
	SetCursorVisible(visible bool)
}

// Router is the single entry point for raw events. Dispatch is called once
// per platform event on the frame goroutine and never concurrently.
type Router struct {
	gamepad *Gamepad
	mode    *Mode
	cursor  Cursor
	log     *slog.Logger

	keyListeners   []KeyListener
	mouseListeners []MouseListener
}

// NewRouter builds a router feeding gamepad and writing mode. cursor and log
// may be nil.
func NewRouter(gamepad *Gamepad, mode *Mode, cursor Cursor, log *slog.Logger) *Router {
	if log == nil {
		log = logging.Discard()
	}
	return &Router{
		gamepad: gamepad,
		mode:    mode,
		cursor:  cursor,
		log:     log,
	}
}

func (r *Router) Gamepad() *Gamepad {
	return r.gamepad
}

func (r *Router) Mode() *Mode {
	return r.mode
}

// AddListener registers l in every broadcast list whose interface it
// satisfies and returns the resolved capabilities. The check happens once,
// here; Dispatch never inspects listener types.
func (r *Router) AddListener(l any) Capability {
	var caps Capability
	if kl, ok := l.(KeyListener); ok {
		r.AddKeyListener(kl)
		caps |= CapabilityKey
	}
	if ml, ok := l.(MouseListener); ok {
		r.AddMouseListener(ml)
		caps |= CapabilityMouse
	}
	if gl, ok := l.(GamepadListener); ok {
		r.AddGamepadListener(gl)
		caps |= CapabilityGamepad
	}
	if caps == 0 {
		r.log.Warn("Listener implements no input capability", "type", fmt.Sprintf("%T", l))
	}
	return caps
}

func (r *Router) AddKeyListener(l KeyListener) {
	r.keyListeners = append(r.keyListeners, l)
}

func (r *Router) AddMouseListener(l MouseListener) {
	r.mouseListeners = append(r.mouseListeners, l)
}

func (r *Router) AddGamepadListener(l GamepadListener) {
	r.gamepad.AddListener(l)
}

// Dispatch classifies ev and fans it out. Unrecognised events are ignored.
func (r *Router) Dispatch(ev Event) {
	switch e := ev.(type) {
	case TextEvent:
		for _, l := range r.keyListeners {
			l.TextEntered(e.Char)
		}
	case KeyEvent:
		for _, l := range r.keyListeners {
			if e.Pressed {
				l.KeyPressed(e.Key)
			} else {
				l.KeyReleased(e.Key)
			}
		}
	case MouseButtonEvent:
		for _, l := range r.mouseListeners {
			if e.Pressed {
				l.MouseButtonPressed(e.X, e.Y, e.Button)
			} else {
				l.MouseButtonReleased(e.X, e.Y, e.Button)
			}
		}
	case MouseMoveEvent:
		r.setPointerMode(true)
		for _, l := range r.mouseListeners {
			l.MouseMoved(e.X, e.Y)
		}
	case MouseWheelEvent:
		for _, l := range r.mouseListeners {
			l.MouseWheelScrolled(e.DX, e.DY)
		}
	case JoystickConnectedEvent:
		r.gamepad.connected(e.Device)
	case JoystickDisconnectedEvent:
		r.gamepad.disconnected(e.Device)
	case JoystickAxisEvent:
		// Resting stick noise must not steal the UI from the pointer.
		if abs(e.Position) > r.gamepad.stickDeadZone {
			r.setPointerMode(false)
		}
		r.gamepad.axis(e.Device, e.Axis, e.Position)
	case JoystickButtonEvent:
		r.setPointerMode(false)
		r.gamepad.button(e.Device, e.Button, e.Pressed)
	}
}

func (r *Router) setPointerMode(pointer bool) {
	if !r.mode.set(pointer) {
		return
	}
	if r.cursor != nil {
		r.cursor.SetCursorVisible(pointer)
	}
	r.log.Debug("Input mode changed", "pointer", pointer)
}
