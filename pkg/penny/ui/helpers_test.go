package ui

import (
	"unicode/utf8"

	"github.com/pennyengine/penny/pkg/penny/constants"
)

// fakeSurface is a 1000x500 surface, so 1% is 10px across and 5px down.
type fakeSurface struct {
	w, h    int
	pointer Vec2
	texts   []string
	fills   int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{w: 1000, h: 500}
}

func (s *fakeSurface) Resolution() (int, int)            { return s.w, s.h }
func (s *fakeSurface) PointerPosition() Vec2             { return s.pointer }
func (s *fakeSurface) FillRect(Rect, Color)              { s.fills++ }
func (s *fakeSurface) StrokeRect(Rect, Color, float32)   {}
func (s *fakeSurface) DrawIcon(string, Rect, Color) bool { return false }
func (s *fakeSurface) DrawSprite(Rect, Rect) bool        { return false }

func (s *fakeSurface) MeasureText(text string, size float32) Vec2 {
	return Vec2{X: float32(utf8.RuneCountInString(text)) * size / 2, Y: size}
}

func (s *fakeSurface) DrawText(text string, _ Vec2, _ float32, _ Color, _ constants.TextAlign) {
	s.texts = append(s.texts, text)
}

type fakeMode struct {
	pointer bool
}

func (m *fakeMode) UsingPointer() bool { return m.pointer }

type fakePad struct {
	held map[constants.GamepadButton]bool
}

func (p *fakePad) IsButtonPressed(b constants.GamepadButton) bool { return p.held[b] }
func (p *fakePad) IsConnected() bool                              { return true }

type testEnv struct {
	ctx     *Context
	surface *fakeSurface
	mode    *fakeMode
	pad     *fakePad
}

func newTestEnv() *testEnv {
	e := &testEnv{
		surface: newFakeSurface(),
		mode:    &fakeMode{pointer: true},
		pad:     &fakePad{held: map[constants.GamepadButton]bool{}},
	}
	e.ctx = NewContext(e.surface, WithInputMode(e.mode), WithGamepad(e.pad))
	return e
}

// openMenu opens m and runs the update that shows its components.
func openMenu(m *Menu) {
	m.Open(false)
	m.Update()
}

type pressLog struct {
	ids []string
}

func (l *pressLog) ButtonPressed(id string) {
	l.ids = append(l.ids, id)
}

func (l *pressLog) count() int {
	return len(l.ids)
}

func center(c Component) (int, int) {
	p := c.Base().Bounds().Center()
	return int(p.X), int(p.Y)
}

func tap(m *Menu, b constants.GamepadButton) {
	m.GamepadButtonPressed(b)
	m.GamepadButtonReleased(b)
}
