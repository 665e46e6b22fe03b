package ui

import (
	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

// ToggleButton is a square checkbox holding a boolean value.
type ToggleButton struct {
	BaseComponent

	label    string
	value    bool
	listener ToggleButtonListener

	mouseDown bool
	pointer   Vec2
}

// NewToggleButton creates a square toggle whose side is size percent of
// the screen width. The label is drawn to its left.
func NewToggleButton(ctx *Context, id string, x, y, size float32, label string, value bool, listener ToggleButtonListener, opts ...ComponentOption) *ToggleButton {
	t := &ToggleButton{
		BaseComponent: newBaseComponent(ctx, id, x, y, size, size, true, AppearanceToggleOff, buildConfig(opts)),
		label:         label,
		value:         value,
		listener:      listener,
	}
	if value {
		t.baseAppearance = AppearanceToggleOn
		t.appearance = AppearanceToggleOn
	}
	return t
}

func (t *ToggleButton) Value() bool {
	return t.value
}

// SetValue changes the value without notifying the listener.
func (t *ToggleButton) SetValue(v bool) {
	t.value = v
}

func (t *ToggleButton) SetListener(l ToggleButtonListener) {
	t.listener = l
}

func (t *ToggleButton) Show() {
	t.BaseComponent.Show()
	t.mouseDown = false
	t.pointer = t.ctx.Pointer()
}

func (t *ToggleButton) Hide() {
	t.BaseComponent.Hide()
	t.mouseDown = false
}

func (t *ToggleButton) Update() {
	base, hover, clicked := AppearanceToggleOff, AppearanceToggleOffHover, AppearanceToggleOffClicked
	if t.value {
		base, hover, clicked = AppearanceToggleOn, AppearanceToggleOnHover, AppearanceToggleOnClicked
	}
	t.baseAppearance = base

	hovered := t.Bounds().Contains(t.pointer)
	switch {
	case t.mouseDown && (hovered || t.selected):
		t.appearance = clicked
	case (hovered || t.selected) && !t.idle(t.mouseDown):
		t.appearance = hover
	default:
		t.appearance = base
	}
}

func (t *ToggleButton) Render(s Surface) {
	r := t.Bounds()
	t.renderFrame(s, r, t.appearance)
	if t.value {
		inner := r.Inset(UniformPadding(r.W * 0.15))
		if !s.DrawIcon(constants.IconCheck, inner, t.ctx.theme.AppearanceConfig(t.appearance).Text) {
			s.FillRect(inner.Inset(UniformPadding(inner.W*0.2)), t.ctx.theme.AppearanceConfig(t.appearance).Text)
		}
	}
	gap := r.W * 0.3
	t.renderText(s, t.label, Vec2{X: r.X - gap, Y: r.Y + r.H/2}, constants.TextAlignRight)
}

func (t *ToggleButton) HasPointerPriority() bool {
	return t.Bounds().Contains(t.pointer)
}

func (t *ToggleButton) MouseMoved(x, y int) {
	t.pointer = Vec2{X: float32(x), Y: float32(y)}
}

func (t *ToggleButton) MouseButtonPressed(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	t.mouseDown = t.Bounds().Contains(Vec2{X: float32(x), Y: float32(y)})
}

func (t *ToggleButton) MouseButtonReleased(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	fire := t.mouseDown && t.Bounds().Contains(Vec2{X: float32(x), Y: float32(y)})
	t.mouseDown = false
	if fire {
		t.toggle()
	}
}

func (t *ToggleButton) GamepadButtonPressed(button constants.GamepadButton) {
	if button == constants.GamepadButtonA && t.selected {
		t.mouseDown = true
	}
}

func (t *ToggleButton) GamepadButtonReleased(button constants.GamepadButton) {
	if button != constants.GamepadButtonA || !t.selected || !t.mouseDown {
		return
	}
	t.mouseDown = false
	t.toggle()
}

func (t *ToggleButton) toggle() {
	t.value = !t.value
	if t.listener != nil {
		t.listener.ToggleButtonPressed(t.id, t.value)
	}
}
