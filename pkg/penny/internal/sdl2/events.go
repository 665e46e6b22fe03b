package sdl2

import (
	"github.com/pennyengine/penny/pkg/penny/input"
	"github.com/pennyengine/penny/pkg/penny/ui"
	"github.com/veandco/go-sdl2/sdl"
)

var keys = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_RETURN:    input.KeyEnter,
	sdl.K_KP_ENTER:  input.KeyEnter,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_SPACE:     input.KeySpace,
	sdl.K_DELETE:    input.KeyDelete,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_UP:        input.KeyUp,
	sdl.K_DOWN:      input.KeyDown,
	sdl.K_HOME:      input.KeyHome,
	sdl.K_END:       input.KeyEnd,
}

var mouseButtons = map[uint8]input.MouseButton{
	sdl.BUTTON_LEFT:   input.MouseButtonLeft,
	sdl.BUTTON_MIDDLE: input.MouseButtonMiddle,
	sdl.BUTTON_RIGHT:  input.MouseButtonRight,
}

// EventPump drains the SDL event queue once per frame and hands each event
// to the router as an input.Event. It remembers the last pointer position
// for the surface.
type EventPump struct {
	joysticks *Joysticks
	pointer   ui.Vec2
}

func NewEventPump(joysticks *Joysticks) *EventPump {
	return &EventPump{joysticks: joysticks}
}

// Poll hands every pending event to dispatch.
func (p *EventPump) Poll(dispatch func(input.Event)) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		for _, out := range p.translate(ev) {
			dispatch(out)
		}
	}
}

// Pointer is the last pointer position seen, in render coordinates.
func (p *EventPump) Pointer() ui.Vec2 {
	return p.pointer
}

func (p *EventPump) translate(ev sdl.Event) []input.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return []input.Event{input.QuitEvent{}}

	case *sdl.KeyboardEvent:
		return translateKey(e)

	case *sdl.TextInputEvent:
		text := e.GetText()
		out := make([]input.Event, 0, len(text))
		for _, r := range text {
			out = append(out, input.TextEvent{Char: r})
		}
		return out

	case *sdl.MouseMotionEvent:
		p.pointer = ui.Vec2{X: float32(e.X), Y: float32(e.Y)}
		return []input.Event{input.MouseMoveEvent{X: int(e.X), Y: int(e.Y)}}

	case *sdl.MouseButtonEvent:
		b, ok := mouseButtons[e.Button]
		if !ok {
			return nil
		}
		p.pointer = ui.Vec2{X: float32(e.X), Y: float32(e.Y)}
		return []input.Event{input.MouseButtonEvent{
			X:       int(e.X),
			Y:       int(e.Y),
			Button:  b,
			Pressed: e.State == sdl.PRESSED,
		}}

	case *sdl.MouseWheelEvent:
		dx, dy := float32(e.X), float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dx, dy = -dx, -dy
		}
		return []input.Event{input.MouseWheelEvent{DX: dx, DY: dy}}

	case *sdl.JoyDeviceAddedEvent:
		if p.joysticks == nil {
			return nil
		}
		if slot, ok := p.joysticks.open(int(e.Which)); ok {
			return []input.Event{input.JoystickConnectedEvent{Device: slot}}
		}

	case *sdl.JoyDeviceRemovedEvent:
		if p.joysticks == nil {
			return nil
		}
		if slot, ok := p.joysticks.close(e.Which); ok {
			return []input.Event{input.JoystickDisconnectedEvent{Device: slot}}
		}

	case *sdl.JoyAxisEvent:
		if slot, ok := p.slot(e.Which); ok {
			return p.joysticks.axisEvent(slot, int(e.Axis), e.Value)
		}

	case *sdl.JoyButtonEvent:
		if slot, ok := p.slot(e.Which); ok {
			return []input.Event{input.JoystickButtonEvent{Device: slot, Button: int(e.Button), Pressed: e.State == sdl.PRESSED}}
		}

	case *sdl.JoyHatEvent:
		if e.Hat != 0 {
			return nil
		}
		if slot, ok := p.slot(e.Which); ok {
			return translateHat(slot, e.Value)
		}
	}
	return nil
}

func (p *EventPump) slot(instance sdl.JoystickID) (int, bool) {
	if p.joysticks == nil {
		return 0, false
	}
	return p.joysticks.slot(instance)
}

// translateKey reports key presses without autorepeat. Backspace also
// produces a '\b' text event on every press, repeats included.
func translateKey(e *sdl.KeyboardEvent) []input.Event {
	pressed := e.State == sdl.PRESSED
	var out []input.Event

	if e.Repeat == 0 {
		k, ok := keys[e.Keysym.Sym]
		if !ok {
			k = input.KeyUnknown
		}
		out = append(out, input.KeyEvent{Key: k, Code: int32(e.Keysym.Sym), Pressed: pressed})
	}
	if pressed && e.Keysym.Sym == sdl.K_BACKSPACE {
		out = append(out, input.TextEvent{Char: '\b'})
	}
	return out
}

// translateHat folds the first hat into the D-pad axes, up and right
// positive.
func translateHat(slot int, value uint8) []input.Event {
	var x, y float32
	if value&sdl.HAT_LEFT != 0 {
		x = -100
	}
	if value&sdl.HAT_RIGHT != 0 {
		x = 100
	}
	if value&sdl.HAT_UP != 0 {
		y = 100
	}
	if value&sdl.HAT_DOWN != 0 {
		y = -100
	}
	return []input.Event{
		input.JoystickAxisEvent{Device: slot, Axis: input.RawAxisDPadX, Position: x},
		input.JoystickAxisEvent{Device: slot, Axis: input.RawAxisDPadY, Position: y},
	}
}
