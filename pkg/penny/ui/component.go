package ui

import (
	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

// Component is anything a Menu can own. Widgets embed BaseComponent and
// override the handlers they care about.
type Component interface {
	ID() string
	Base() *BaseComponent

	Update()
	Render(s Surface)
	Show()
	Hide()
	Move(dx, dy float32)

	// HasPointerPriority reports whether the widget wants pointer presses
	// that would otherwise reach a container behind it.
	HasPointerPriority() bool

	input.KeyListener
	MouseButtonPressed(x, y int, b input.MouseButton)
	MouseButtonReleased(x, y int, b input.MouseButton)
	MouseMoved(x, y int)
	MouseWheelScrolled(dx, dy float32)
	GamepadButtonPressed(b constants.GamepadButton)
	GamepadButtonReleased(b constants.GamepadButton)
	VirtualKeyboardClosed()
}

type componentConfig struct {
	autoCenter  bool
	selectionID *int
	textSize    float32
}

// ComponentOption tweaks a widget at construction.
type ComponentOption func(*componentConfig)

// AutoCenter treats the given position as the widget's centre.
func AutoCenter() ComponentOption {
	return func(c *componentConfig) {
		c.autoCenter = true
	}
}

func WithSelectionID(id int) ComponentOption {
	return func(c *componentConfig) {
		c.selectionID = &id
	}
}

// WithTextSize sets the label height as a percentage of screen height.
func WithTextSize(percent float32) ComponentOption {
	return func(c *componentConfig) {
		c.textSize = percent
	}
}

func buildConfig(opts []ComponentOption) componentConfig {
	var cfg componentConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// BaseComponent holds the state every widget shares: geometry, visibility,
// selection, appearance and its z index in each owning menu.
type BaseComponent struct {
	ctx *Context
	id  string

	pos  Vec2
	size Vec2

	baseAppearance Appearance
	appearance     Appearance

	active            bool
	selected          bool
	selectable        bool
	selectionID       int
	hasSelectionID    bool
	blockGamepadInput bool

	textSize float32

	owners     map[menuHandle]int
	ownerOrder []menuHandle
}

func newBaseComponent(ctx *Context, id string, x, y, w, h float32, square bool, a Appearance, cfg componentConfig) BaseComponent {
	pos := ctx.PercentToScreen(x, y)
	size := ctx.PercentToScreen(w, h)
	if square {
		size.Y = size.X
	}
	if cfg.autoCenter {
		pos = pos.Sub(size.Scale(0.5))
	}

	textPercent := cfg.textSize
	if textPercent <= 0 {
		textPercent = ctx.theme.TextSize
	}

	b := BaseComponent{
		ctx:            ctx,
		id:             id,
		pos:            pos,
		size:           size,
		baseAppearance: a,
		appearance:     a,
		selectable:     true,
		textSize:       ctx.TextSize(textPercent),
		owners:         make(map[menuHandle]int),
	}
	if cfg.selectionID != nil {
		b.selectionID = *cfg.selectionID
		b.hasSelectionID = true
	}
	return b
}

func (b *BaseComponent) ID() string {
	return b.id
}

func (b *BaseComponent) Base() *BaseComponent {
	return b
}

func (b *BaseComponent) Position() Vec2 {
	return b.pos
}

func (b *BaseComponent) Size() Vec2 {
	return b.size
}

func (b *BaseComponent) Bounds() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, W: b.size.X, H: b.size.Y}
}

func (b *BaseComponent) Move(dx, dy float32) {
	b.pos.X += dx
	b.pos.Y += dy
}

func (b *BaseComponent) IsActive() bool {
	return b.active
}

func (b *BaseComponent) Show() {
	b.active = true
}

// Hide deactivates the widget and resets its appearance.
func (b *BaseComponent) Hide() {
	b.active = false
	b.appearance = b.baseAppearance
}

func (b *BaseComponent) IsSelected() bool {
	return b.selected
}

func (b *BaseComponent) SetSelected(selected bool) {
	b.selected = selected
}

func (b *BaseComponent) IsSelectable() bool {
	return b.selectable
}

func (b *BaseComponent) SetSelectable(selectable bool) {
	b.selectable = selectable
}

// SelectionID returns the grid id and whether one was assigned.
func (b *BaseComponent) SelectionID() (int, bool) {
	return b.selectionID, b.hasSelectionID
}

func (b *BaseComponent) SetSelectionID(id int) {
	b.selectionID = id
	b.hasSelectionID = true
}

func (b *BaseComponent) ClearSelectionID() {
	b.selectionID = 0
	b.hasSelectionID = false
}

// BlockGamepadInput stops the owning menus from forwarding gamepad buttons.
func (b *BaseComponent) BlockGamepadInput(block bool) {
	b.blockGamepadInput = block
}

func (b *BaseComponent) IsGamepadInputBlocked() bool {
	return b.blockGamepadInput
}

func (b *BaseComponent) Appearance() Appearance {
	return b.appearance
}

func (b *BaseComponent) SetAppearance(a Appearance) {
	b.appearance = a
}

// ZIndex returns the widget's z index in m; 0 is the front.
func (b *BaseComponent) ZIndex(m *Menu) (int, bool) {
	if m == nil {
		return 0, false
	}
	z, ok := b.owners[m.handle]
	return z, ok
}

func (b *BaseComponent) MoveForward() {
	b.eachOwner(func(m *Menu) { m.moveForward(b) })
}

func (b *BaseComponent) MoveBack() {
	b.eachOwner(func(m *Menu) { m.moveBack(b) })
}

func (b *BaseComponent) MoveToFront() {
	b.eachOwner(func(m *Menu) { m.moveToFront(b) })
}

func (b *BaseComponent) eachOwner(fn func(*Menu)) {
	for _, h := range b.ownerOrder {
		if m := b.ctx.menu(h); m != nil {
			fn(m)
		}
	}
}

func (b *BaseComponent) setOwner(h menuHandle, z int) {
	if _, ok := b.owners[h]; !ok {
		b.ownerOrder = append(b.ownerOrder, h)
	}
	b.owners[h] = z
}

func (b *BaseComponent) dropOwner(h menuHandle) {
	delete(b.owners, h)
	for i, o := range b.ownerOrder {
		if o == h {
			b.ownerOrder = append(b.ownerOrder[:i], b.ownerOrder[i+1:]...)
			return
		}
	}
}

// activeOwner returns the first owning menu that is open.
func (b *BaseComponent) activeOwner() *Menu {
	for _, h := range b.ownerOrder {
		if m := b.ctx.menu(h); m != nil && m.IsActive() {
			return m
		}
	}
	return nil
}

// idle reports whether a gamepad player is not focusing the widget, in
// which case pointer hover must not be shown.
func (b *BaseComponent) idle(mouseDown bool) bool {
	return !b.ctx.UsingPointer() && !mouseDown && !b.selected
}

func (b *BaseComponent) Update() {}

func (b *BaseComponent) Render(s Surface) {
	b.renderFrame(s, b.Bounds(), b.appearance)
}

func (b *BaseComponent) renderFrame(s Surface, r Rect, a Appearance) {
	cfg := b.ctx.theme.AppearanceConfig(a)
	if cfg.Sprite == nil || !s.DrawSprite(*cfg.Sprite, r) {
		s.FillRect(r, cfg.Fill)
	}
	if cfg.BorderWidth > 0 {
		s.StrokeRect(r, cfg.Border, cfg.BorderWidth)
	}
}

func (b *BaseComponent) renderText(s Surface, text string, at Vec2, align constants.TextAlign) {
	if text == "" {
		return
	}
	cfg := b.ctx.theme.AppearanceConfig(b.appearance)
	s.DrawText(text, at, b.textSize, cfg.Text, align)
}

func (b *BaseComponent) HasPointerPriority() bool { return false }

func (b *BaseComponent) KeyPressed(input.Key)                            {}
func (b *BaseComponent) KeyReleased(input.Key)                           {}
func (b *BaseComponent) TextEntered(rune)                                {}
func (b *BaseComponent) MouseButtonPressed(int, int, input.MouseButton)  {}
func (b *BaseComponent) MouseButtonReleased(int, int, input.MouseButton) {}
func (b *BaseComponent) MouseMoved(int, int)                             {}
func (b *BaseComponent) MouseWheelScrolled(float32, float32)             {}
func (b *BaseComponent) GamepadButtonPressed(constants.GamepadButton)    {}
func (b *BaseComponent) GamepadButtonReleased(constants.GamepadButton)   {}
func (b *BaseComponent) VirtualKeyboardClosed()                          {}
