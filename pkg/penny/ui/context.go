package ui

import (
	"log/slog"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/internal/logging"
)

type menuHandle int

// Context carries what widgets need from the running engine: the surface,
// the input mode, the gamepad, the theme and the menu registry.
type Context struct {
	surface   Surface
	mode      InputMode
	gamepad   GamepadState
	theme     *Theme
	log       *slog.Logger
	localizer Localizer
	manager   *Manager

	menus      map[menuHandle]*Menu
	nextHandle menuHandle
}

type ContextOption func(*Context)

func WithLogger(log *slog.Logger) ContextOption {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

func WithTheme(t *Theme) ContextOption {
	return func(c *Context) {
		if t != nil {
			c.theme = t
		}
	}
}

func WithGamepad(g GamepadState) ContextOption {
	return func(c *Context) {
		if g != nil {
			c.gamepad = g
		}
	}
}

func WithInputMode(m InputMode) ContextOption {
	return func(c *Context) {
		if m != nil {
			c.mode = m
		}
	}
}

func WithLocalizer(l Localizer) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.localizer = l
		}
	}
}

func NewContext(surface Surface, opts ...ContextOption) *Context {
	c := &Context{
		surface:   surface,
		mode:      pointerMode{},
		gamepad:   noGamepad{},
		theme:     DefaultTheme(),
		log:       logging.Discard(),
		localizer: englishLabels{},
		menus:     make(map[menuHandle]*Menu),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) Surface() Surface {
	return c.surface
}

func (c *Context) Theme() *Theme {
	return c.theme
}

func (c *Context) Logger() *slog.Logger {
	return c.log
}

// Manager returns the manager bound to this context, or nil.
func (c *Context) Manager() *Manager {
	return c.manager
}

func (c *Context) UsingPointer() bool {
	return c.mode.UsingPointer()
}

func (c *Context) buttonHeld(b constants.GamepadButton) bool {
	return c.gamepad.IsConnected() && c.gamepad.IsButtonPressed(b)
}

func (c *Context) localize(id string) string {
	return c.localizer.Localize(id)
}

// Pointer is the pointer position in content coordinates.
func (c *Context) Pointer() Vec2 {
	p := c.surface.PointerPosition()
	if c.manager != nil {
		p = p.Add(c.manager.pointerOffset)
	}
	return p
}

// PercentToScreen converts percentages of the resolution to pixels.
func (c *Context) PercentToScreen(x, y float32) Vec2 {
	w, h := c.surface.Resolution()
	return Vec2{X: x / 100 * float32(w), Y: y / 100 * float32(h)}
}

// TextSize converts a percentage of the screen height to a pixel line height.
func (c *Context) TextSize(percent float32) float32 {
	return c.PercentToScreen(0, percent).Y
}

func (c *Context) register(m *Menu) menuHandle {
	c.nextHandle++
	c.menus[c.nextHandle] = m
	return c.nextHandle
}

func (c *Context) menu(h menuHandle) *Menu {
	return c.menus[h]
}

// findComponent searches every registered menu in registration order.
func (c *Context) findComponent(id string) (Component, bool) {
	for h := menuHandle(1); h <= c.nextHandle; h++ {
		m, ok := c.menus[h]
		if !ok {
			continue
		}
		if comp, ok := m.LookupComponent(id); ok {
			return comp, true
		}
	}
	return nil, false
}
