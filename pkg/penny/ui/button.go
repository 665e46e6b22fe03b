package ui

import (
	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

// Button fires its listener on a left click released inside its bounds, or
// on an A press and release while selected.
type Button struct {
	BaseComponent

	label    string
	icon     string
	listener ButtonListener

	// pressWhenSelected fires once each time the button becomes selected
	// and disables the A press path.
	pressWhenSelected bool
	wasSelected       bool

	mouseDown bool
	pointer   Vec2
}

// NewButton creates a button at (x, y) sized (w, h), all in percent of the
// screen. listener may be nil.
func NewButton(ctx *Context, id string, x, y, w, h float32, label string, listener ButtonListener, opts ...ComponentOption) *Button {
	return &Button{
		BaseComponent: newBaseComponent(ctx, id, x, y, w, h, false, AppearanceButton, buildConfig(opts)),
		label:         label,
		listener:      listener,
	}
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) SetLabel(label string) {
	b.label = label
}

// SetIcon draws the named icon instead of the label when the surface has it.
func (b *Button) SetIcon(name string) {
	b.icon = name
}

func (b *Button) SetListener(l ButtonListener) {
	b.listener = l
}

func (b *Button) SetPressWhenSelected(enabled bool) {
	b.pressWhenSelected = enabled
}

func (b *Button) Show() {
	b.BaseComponent.Show()
	b.mouseDown = false
	b.pointer = b.ctx.Pointer()
}

func (b *Button) Hide() {
	b.BaseComponent.Hide()
	b.mouseDown = false
}

func (b *Button) Update() {
	hovered := b.Bounds().Contains(b.pointer)
	switch {
	case b.mouseDown && (hovered || b.selected):
		b.appearance = AppearanceButtonClicked
	case (hovered || b.selected) && !b.idle(b.mouseDown):
		b.appearance = AppearanceButtonHover
	default:
		b.appearance = AppearanceButton
	}

	if b.pressWhenSelected {
		if b.selected && !b.wasSelected {
			b.fire()
		}
	}
	b.wasSelected = b.selected
}

func (b *Button) Render(s Surface) {
	r := b.Bounds()
	b.renderFrame(s, r, b.appearance)

	if b.icon != "" {
		side := min(r.W, r.H) * 0.6
		c := r.Center()
		icon := Rect{X: c.X - side/2, Y: c.Y - side/2, W: side, H: side}
		if s.DrawIcon(b.icon, icon, b.ctx.theme.AppearanceConfig(b.appearance).Text) {
			return
		}
	}
	b.renderText(s, b.label, r.Center(), constants.TextAlignCenter)
}

func (b *Button) HasPointerPriority() bool {
	return b.Bounds().Contains(b.pointer)
}

func (b *Button) MouseMoved(x, y int) {
	b.pointer = Vec2{X: float32(x), Y: float32(y)}
}

func (b *Button) MouseButtonPressed(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	b.mouseDown = b.Bounds().Contains(Vec2{X: float32(x), Y: float32(y)})
}

func (b *Button) MouseButtonReleased(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	inside := b.Bounds().Contains(Vec2{X: float32(x), Y: float32(y)})
	if b.mouseDown && inside {
		b.mouseDown = false
		b.fire()
		return
	}
	b.mouseDown = false
}

func (b *Button) GamepadButtonPressed(button constants.GamepadButton) {
	if button == constants.GamepadButtonA && b.selected && !b.pressWhenSelected {
		b.mouseDown = true
	}
}

func (b *Button) GamepadButtonReleased(button constants.GamepadButton) {
	if button != constants.GamepadButtonA || !b.selected || b.pressWhenSelected {
		return
	}
	if b.mouseDown {
		b.mouseDown = false
		b.fire()
	}
}

func (b *Button) fire() {
	if b.listener != nil {
		b.listener.ButtonPressed(b.id)
	}
}
