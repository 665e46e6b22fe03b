package input

import "github.com/pennyengine/penny/pkg/penny/constants"

// KeyListener receives keyboard and text events.
type KeyListener interface {
	KeyPressed(key Key)
	KeyReleased(key Key)
	TextEntered(char rune)
}

// MouseListener receives pointer events in window coordinates.
type MouseListener interface {
	MouseButtonPressed(x, y int, button MouseButton)
	MouseButtonReleased(x, y int, button MouseButton)
	MouseMoved(x, y int)
	MouseWheelScrolled(dx, dy float32)
}

// GamepadListener receives logical button edges and connection changes.
type GamepadListener interface {
	GamepadButtonPressed(button constants.GamepadButton)
	GamepadButtonReleased(button constants.GamepadButton)
	GamepadConnected(device int)
	GamepadDisconnected(device int)
}

// Capability is the set of listener interfaces a registered value satisfies.
type Capability uint8

const (
	CapabilityKey Capability = 1 << iota
	CapabilityMouse
	CapabilityGamepad
)

func (c Capability) Has(other Capability) bool {
	return c&other == other
}
