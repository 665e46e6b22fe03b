package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

const cursorBlinkFrames = 24

// TextField is a single-line text input. A click arms it for the physical
// keyboard; an A press while selected arms it, locks the owning menu and
// opens the virtual keyboard.
type TextField struct {
	BaseComponent

	label   string
	text    string
	minSize Vec2
	padding Padding
	center  bool
	origin  Vec2

	armed       bool
	mouseDown   bool
	pointer     Vec2
	wasSelected bool

	locked         *Menu
	lockedNavWasOn bool

	blink int
}

// NewTextField creates a field at least (w, h) percent of the screen. It
// grows to fit its text.
func NewTextField(ctx *Context, id string, x, y, w, h float32, label string, opts ...ComponentOption) *TextField {
	cfg := buildConfig(opts)
	base := newBaseComponent(ctx, id, x, y, w, h, false, AppearanceTextField, cfg)
	f := &TextField{
		BaseComponent: base,
		label:         label,
		minSize:       base.size,
		padding:       UniformPadding(base.textSize * 0.4),
		center:        cfg.autoCenter,
		origin:        base.pos,
	}
	if f.center {
		f.origin = base.Bounds().Center()
	}
	return f
}

func (f *TextField) Text() string {
	return f.text
}

func (f *TextField) SetText(text string) {
	f.text = text
}

func (f *TextField) Label() string {
	return f.label
}

func (f *TextField) IsArmed() bool {
	return f.armed
}

// Disarm stops accepting text.
func (f *TextField) Disarm() {
	f.armed = false
}

func (f *TextField) Move(dx, dy float32) {
	f.BaseComponent.Move(dx, dy)
	f.origin = f.origin.Add(Vec2{X: dx, Y: dy})
}

func (f *TextField) Show() {
	f.BaseComponent.Show()
	f.mouseDown = false
	f.pointer = f.ctx.Pointer()
}

func (f *TextField) Hide() {
	f.BaseComponent.Hide()
	f.mouseDown = false
	f.armed = false
}

func (f *TextField) Update() {
	if f.wasSelected && !f.selected {
		f.armed = false
	}
	f.wasSelected = f.selected

	hovered := f.Bounds().Contains(f.pointer)
	switch {
	case f.armed:
		f.appearance = AppearanceTextFieldArmed
	case f.selected || (hovered && !f.mouseDown && !f.idle(f.mouseDown)):
		f.appearance = AppearanceTextFieldHover
	default:
		f.appearance = AppearanceTextField
	}

	f.fit()

	if f.armed {
		f.blink = (f.blink + 1) % (cursorBlinkFrames * 2)
	} else {
		f.blink = 0
	}
}

// fit grows the field around its text, keeping the centre fixed for
// auto-centred fields and the top-left corner otherwise.
func (f *TextField) fit() {
	measured := f.ctx.surface.MeasureText(f.text, f.textSize)
	size := Vec2{
		X: max(f.minSize.X, measured.X+f.padding.Left+f.padding.Right),
		Y: max(f.minSize.Y, measured.Y+f.padding.Top+f.padding.Bottom),
	}
	if size == f.size {
		return
	}
	f.size = size
	if f.center {
		f.pos = f.origin.Sub(size.Scale(0.5))
	} else {
		f.pos = f.origin
	}
}

func (f *TextField) Render(s Surface) {
	r := f.Bounds()
	f.renderFrame(s, r, f.appearance)
	inner := r.Inset(f.padding)
	f.renderText(s, f.label, Vec2{X: r.X, Y: r.Y - f.textSize*0.75}, constants.TextAlignLeft)
	f.renderText(s, f.text, Vec2{X: inner.X, Y: inner.Y + inner.H/2}, constants.TextAlignLeft)

	if f.armed && f.blink < cursorBlinkFrames {
		w := s.MeasureText(f.text, f.textSize).X
		caret := Rect{X: inner.X + w + 1, Y: inner.Y + inner.H/2 - f.textSize/2, W: 2, H: f.textSize}
		s.FillRect(caret, f.ctx.theme.AppearanceConfig(f.appearance).Text)
	}
}

func (f *TextField) HasPointerPriority() bool {
	return f.Bounds().Contains(f.pointer)
}

func (f *TextField) MouseMoved(x, y int) {
	f.pointer = Vec2{X: float32(x), Y: float32(y)}
}

func (f *TextField) MouseButtonPressed(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	f.mouseDown = f.Bounds().Contains(Vec2{X: float32(x), Y: float32(y)})
}

// MouseButtonReleased arms the field when released inside it and disarms
// it otherwise. A field armed for the virtual keyboard stays armed.
func (f *TextField) MouseButtonReleased(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	if f.locked != nil {
		f.mouseDown = false
		return
	}
	f.armed = f.mouseDown && f.Bounds().Contains(Vec2{X: float32(x), Y: float32(y)})
	f.mouseDown = false
}

func (f *TextField) GamepadButtonPressed(button constants.GamepadButton) {
	if button == constants.GamepadButtonA && f.selected {
		f.mouseDown = true
	}
}

func (f *TextField) GamepadButtonReleased(button constants.GamepadButton) {
	if button != constants.GamepadButtonA || !f.selected || !f.mouseDown {
		return
	}
	f.mouseDown = false
	f.armed = true
	f.lock()
	if m := f.ctx.manager; m != nil {
		m.OpenVirtualKeyboard()
	} else {
		f.ctx.log.Debug("TextField armed without a manager, no virtual keyboard", "id", f.id)
	}
}

func (f *TextField) KeyPressed(k input.Key) {
	if !f.armed || f.locked != nil {
		return
	}
	if k == input.KeyEnter || k == input.KeyEscape {
		f.armed = false
	}
}

func (f *TextField) TextEntered(r rune) {
	if !f.armed {
		return
	}
	if r == '\b' {
		if _, size := utf8.DecodeLastRuneInString(f.text); size > 0 {
			f.text = f.text[:len(f.text)-size]
		}
		return
	}
	if unicode.IsPrint(r) {
		f.text += string(r)
	}
}

// VirtualKeyboardClosed releases the menu lock taken when the field was
// armed with the gamepad.
func (f *TextField) VirtualKeyboardClosed() {
	if f.locked == nil {
		return
	}
	f.armed = false
	f.unlock()
}

// lock stops the owning menu from navigating and blocks gamepad input for
// every other widget in it while the virtual keyboard is up.
func (f *TextField) lock() {
	if f.locked != nil {
		return
	}
	m := f.activeOwner()
	if m == nil {
		return
	}
	f.locked = m
	f.lockedNavWasOn = m.GamepadNavigationEnabled()
	m.DisableGamepadNavigation()
	for _, c := range m.components {
		if c.Base() != &f.BaseComponent {
			c.Base().BlockGamepadInput(true)
		}
	}
}

func (f *TextField) unlock() {
	m := f.locked
	f.locked = nil
	for _, c := range m.components {
		c.Base().BlockGamepadInput(false)
	}
	if f.lockedNavWasOn {
		m.EnableGamepadNavigation()
	}
}
