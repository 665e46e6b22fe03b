package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

// KeyboardAction is what a reserved gamepad button does while the virtual
// keyboard is open.
type KeyboardAction int

const (
	KeyboardActionDone KeyboardAction = iota
	KeyboardActionSpace
	KeyboardActionBackspace
	KeyboardActionCaps
)

// DefaultKeyboardBindings maps reserved buttons to keyboard actions.
func DefaultKeyboardBindings() map[constants.GamepadButton]KeyboardAction {
	return map[constants.GamepadButton]KeyboardAction{
		constants.GamepadButtonStart:     KeyboardActionDone,
		constants.GamepadButtonY:         KeyboardActionSpace,
		constants.GamepadButtonLB:        KeyboardActionBackspace,
		constants.GamepadButtonB:         KeyboardActionBackspace,
		constants.GamepadButtonLeftStick: KeyboardActionCaps,
	}
}

// Manager owns the top-level menus and the virtual keyboard. It fans input
// out to every active menu and drives update and draw.
type Manager struct {
	ctx      *Context
	menus    []*Menu
	keyboard *virtualKeyboard

	bindings      map[constants.GamepadButton]KeyboardAction
	repeat        *input.DirectionalRepeat
	animate       bool
	pointerOffset Vec2
}

type ManagerOption func(*Manager)

// WithNavigationRepeat re-sends a held D-pad direction after delay, then
// every interval.
func WithNavigationRepeat(delay, interval time.Duration) ManagerOption {
	return func(m *Manager) {
		m.repeat = input.NewDirectionalRepeatWithTiming(delay, interval)
	}
}

// WithKeyboardAnimation slides the virtual keyboard in from the bottom.
func WithKeyboardAnimation(enabled bool) ManagerOption {
	return func(m *Manager) {
		m.animate = enabled
	}
}

func WithKeyboardBindings(b map[constants.GamepadButton]KeyboardAction) ManagerOption {
	return func(m *Manager) {
		m.bindings = b
	}
}

// NewManager binds a manager to ctx and builds the virtual keyboard.
func NewManager(ctx *Context, opts ...ManagerOption) *Manager {
	m := &Manager{
		ctx:      ctx,
		bindings: DefaultKeyboardBindings(),
		animate:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	ctx.manager = m
	m.keyboard = newVirtualKeyboard(ctx, m, m.animate)
	return m
}

func (m *Manager) Context() *Context {
	return m.ctx
}

// AddMenu registers a top-level menu. Children reached through AddChild
// are managed with it.
func (m *Manager) AddMenu(menu *Menu) {
	for _, existing := range m.menus {
		if existing == menu {
			return
		}
	}
	m.menus = append(m.menus, menu)
}

// NewMenu creates a menu and adds it at the top level.
func (m *Manager) NewMenu(id string) *Menu {
	menu := NewMenu(m.ctx, id)
	m.AddMenu(menu)
	return menu
}

// Menu returns the menu with the given id, logging a warning when there is
// none.
func (m *Manager) Menu(id string) *Menu {
	menu, ok := m.LookupMenu(id)
	if !ok {
		m.ctx.log.Warn("Did not find menu", "menu", id)
	}
	return menu
}

func (m *Manager) LookupMenu(id string) (*Menu, bool) {
	for _, menu := range m.allMenus() {
		if menu.id == id {
			return menu, true
		}
	}
	return nil, false
}

// allMenus lists application menus depth first, then the keyboard menus.
// Each menu appears once.
func (m *Manager) allMenus() []*Menu {
	seen := make(map[*Menu]bool)
	var out []*Menu
	var walk func(*Menu)
	walk = func(menu *Menu) {
		if seen[menu] {
			return
		}
		seen[menu] = true
		out = append(out, menu)
		for _, c := range menu.children {
			walk(c)
		}
	}
	for _, menu := range m.menus {
		walk(menu)
	}
	for _, menu := range m.keyboard.menus() {
		walk(menu)
	}
	return out
}

// activeMenus is snapshotted before each fan-out, so a menu opened by a
// handler only sees the next event.
func (m *Manager) activeMenus() []*Menu {
	var out []*Menu
	for _, menu := range m.allMenus() {
		if menu.active {
			out = append(out, menu)
		}
	}
	return out
}

// SetPointerOffset sets the camera offset added to window pointer
// coordinates before they reach widgets.
func (m *Manager) SetPointerOffset(offset Vec2) {
	m.pointerOffset = offset
}

func (m *Manager) PointerOffset() Vec2 {
	return m.pointerOffset
}

// Update advances animations and navigation repeat, then updates every
// active menu.
func (m *Manager) Update(dt time.Duration) {
	if m.repeat != nil {
		if b, ok := m.repeat.Update(dt); ok && !m.ctx.UsingPointer() {
			m.dispatchPressed(b)
		}
	}
	m.keyboard.step(dt)
	for _, menu := range m.activeMenus() {
		menu.Update()
	}
}

// Draw renders active menus in order, the keyboard last.
func (m *Manager) Draw() {
	for _, menu := range m.activeMenus() {
		menu.Render(m.ctx.surface)
	}
}

func (m *Manager) VirtualKeyboardOpen() bool {
	return m.keyboard.isOpen()
}

func (m *Manager) OpenVirtualKeyboard() {
	if m.keyboard.isOpen() {
		return
	}
	m.ctx.log.Debug("Opening virtual keyboard")
	m.keyboard.open()
}

// CloseVirtualKeyboard closes both keyboard menus and tells every active
// menu.
func (m *Manager) CloseVirtualKeyboard() {
	if !m.keyboard.isOpen() {
		return
	}
	m.ctx.log.Debug("Closing virtual keyboard")
	m.keyboard.close()
	for _, menu := range m.activeMenus() {
		menu.VirtualKeyboardClosed()
	}
}

func (m *Manager) ToggleVirtualKeyboard() {
	if m.keyboard.isOpen() {
		m.CloseVirtualKeyboard()
		return
	}
	m.OpenVirtualKeyboard()
}

// ButtonPressed receives the virtual keyboard's buttons.
func (m *Manager) ButtonPressed(id string) {
	name, ok := strings.CutPrefix(id, VirtualKeyPrefix)
	if !ok {
		return
	}
	switch name {
	case keyDone:
		m.CloseVirtualKeyboard()
	case keyCaps:
		m.keyboard.toggleCase()
	case keyBack:
		m.TextEntered('\b')
	case keySpace:
		m.TextEntered(' ')
	default:
		if r, size := utf8.DecodeRuneInString(name); size > 0 && r != utf8.RuneError {
			m.TextEntered(r)
		}
	}
}

func (m *Manager) runKeyboardAction(a KeyboardAction) {
	switch a {
	case KeyboardActionDone:
		m.CloseVirtualKeyboard()
	case KeyboardActionSpace:
		m.TextEntered(' ')
	case KeyboardActionBackspace:
		m.TextEntered('\b')
	case KeyboardActionCaps:
		m.keyboard.toggleCase()
	}
}

func (m *Manager) KeyPressed(k input.Key) {
	for _, menu := range m.activeMenus() {
		menu.KeyPressed(k)
	}
}

func (m *Manager) KeyReleased(k input.Key) {
	for _, menu := range m.activeMenus() {
		menu.KeyReleased(k)
	}
}

func (m *Manager) TextEntered(r rune) {
	for _, menu := range m.activeMenus() {
		menu.TextEntered(r)
	}
}

func (m *Manager) content(x, y int) (int, int) {
	return x + int(m.pointerOffset.X), y + int(m.pointerOffset.Y)
}

func (m *Manager) MouseButtonPressed(x, y int, b input.MouseButton) {
	x, y = m.content(x, y)
	for _, menu := range m.activeMenus() {
		menu.MouseButtonPressed(x, y, b)
	}
}

func (m *Manager) MouseButtonReleased(x, y int, b input.MouseButton) {
	x, y = m.content(x, y)
	for _, menu := range m.activeMenus() {
		menu.MouseButtonReleased(x, y, b)
	}
}

func (m *Manager) MouseMoved(x, y int) {
	x, y = m.content(x, y)
	for _, menu := range m.activeMenus() {
		menu.MouseMoved(x, y)
	}
}

func (m *Manager) MouseWheelScrolled(dx, dy float32) {
	for _, menu := range m.activeMenus() {
		menu.MouseWheelScrolled(dx, dy)
	}
}

func (m *Manager) GamepadButtonPressed(b constants.GamepadButton) {
	if m.repeat != nil {
		m.repeat.SetHeld(b, true)
	}
	m.dispatchPressed(b)
}

func (m *Manager) dispatchPressed(b constants.GamepadButton) {
	for _, menu := range m.activeMenus() {
		menu.GamepadButtonPressed(b)
	}
}

// GamepadButtonReleased runs a reserved keyboard binding first when the
// keyboard is open, then forwards the release.
func (m *Manager) GamepadButtonReleased(b constants.GamepadButton) {
	if m.repeat != nil {
		m.repeat.SetHeld(b, false)
	}
	menus := m.activeMenus()
	if m.keyboard.isOpen() {
		if a, ok := m.bindings[b]; ok {
			m.runKeyboardAction(a)
		}
	}
	for _, menu := range menus {
		menu.GamepadButtonReleased(b)
	}
}

func (m *Manager) GamepadConnected(device int) {
	m.ctx.log.Debug("Gamepad connected", "device", device)
}

func (m *Manager) GamepadDisconnected(device int) {
	m.ctx.log.Debug("Gamepad disconnected", "device", device)
	if m.repeat != nil {
		m.repeat.Reset()
	}
}
