package ui

import (
	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

const defaultSliderStep float32 = 0.01

// SliderHandle is the draggable part of a Slider. It is owned by the
// slider and never added to a menu on its own.
type SliderHandle struct {
	BaseComponent
	slider *Slider
}

func (h *SliderHandle) Slider() *Slider {
	return h.slider
}

// Slider maps a horizontal rail to a value in [0, 1]. It is dragged with
// the pointer or stepped with the D-pad while selected.
type Slider struct {
	BaseComponent

	label    string
	handle   *SliderHandle
	listener SliderListener

	value     float32
	lastValue float32
	stepRate  float32

	dragging bool
	pointer  Vec2
}

// NewSlider creates a slider whose rail is (w, h) percent of the screen.
// The value starts at 0.5.
func NewSlider(ctx *Context, id string, x, y, w, h float32, label string, listener SliderListener, opts ...ComponentOption) *Slider {
	s := &Slider{
		BaseComponent: newBaseComponent(ctx, id, x, y, w, h, false, AppearanceSliderRail, buildConfig(opts)),
		label:         label,
		listener:      listener,
		stepRate:      defaultSliderStep,
	}

	rail := s.Bounds()
	hw := min(rail.W/4, rail.H*2)
	hh := rail.H * 2
	s.handle = &SliderHandle{
		BaseComponent: BaseComponent{
			ctx:            ctx,
			id:             id + "_handle",
			pos:            Vec2{X: rail.X, Y: rail.Y + rail.H/2 - hh/2},
			size:           Vec2{X: hw, Y: hh},
			baseAppearance: AppearanceSliderHandle,
			appearance:     AppearanceSliderHandle,
			owners:         make(map[menuHandle]int),
		},
		slider: s,
	}

	s.SetValue(0.5)
	s.lastValue = s.value
	return s
}

func (s *Slider) Handle() *SliderHandle {
	return s.handle
}

func (s *Slider) Value() float32 {
	return s.value
}

// SetValue clamps v to [0, 1] and repositions the handle. The listener
// hears about it on the next update.
func (s *Slider) SetValue(v float32) {
	s.value = clampUnit(v)
	s.positionHandle()
}

// SetStepRate sets how far one update with the D-pad held moves the value.
func (s *Slider) SetStepRate(rate float32) {
	s.stepRate = rate
}

func (s *Slider) SetListener(l SliderListener) {
	s.listener = l
}

func (s *Slider) travel() float32 {
	return s.size.X - s.handle.size.X
}

func (s *Slider) positionHandle() {
	s.handle.pos.X = s.pos.X + s.travel()*s.value
}

func (s *Slider) Move(dx, dy float32) {
	s.BaseComponent.Move(dx, dy)
	s.handle.Move(dx, dy)
}

func (s *Slider) Show() {
	s.BaseComponent.Show()
	s.handle.Show()
	s.dragging = false
	s.pointer = s.ctx.Pointer()
}

func (s *Slider) Hide() {
	s.BaseComponent.Hide()
	s.handle.Hide()
	s.dragging = false
}

func (s *Slider) Update() {
	if s.selected {
		if s.ctx.buttonHeld(constants.GamepadButtonDPadLeft) {
			s.SetValue(s.value - s.stepRate)
		}
		if s.ctx.buttonHeld(constants.GamepadButtonDPadRight) {
			s.SetValue(s.value + s.stepRate)
		}
	}

	if s.dragging {
		minX := s.pos.X
		maxX := s.pos.X + s.travel()
		x := s.pointer.X - s.handle.size.X/2
		switch {
		case x <= minX:
			s.value = 0
		case x >= maxX:
			s.value = 1
		default:
			s.value = clampUnit((x - minX) / s.travel())
		}
		s.positionHandle()
	}

	hovered := s.handle.Bounds().Contains(s.pointer)
	switch {
	case s.dragging:
		s.handle.appearance = AppearanceSliderHandleClicked
	case (hovered || s.selected) && !s.idle(false):
		s.handle.appearance = AppearanceSliderHandleHover
	default:
		s.handle.appearance = AppearanceSliderHandle
	}

	if s.value != s.lastValue {
		s.lastValue = s.value
		if s.listener != nil {
			s.listener.SliderMoved(s.id, s.value)
		}
	}
}

func (s *Slider) Render(surface Surface) {
	rail := s.Bounds()
	s.renderFrame(surface, rail, s.appearance)
	s.renderFrame(surface, s.handle.Bounds(), s.handle.appearance)
	s.renderText(surface, s.label, Vec2{X: rail.X, Y: s.handle.pos.Y - s.textSize/2 - 2}, constants.TextAlignLeft)
}

func (s *Slider) HasPointerPriority() bool {
	return s.dragging || s.handle.Bounds().Contains(s.pointer)
}

func (s *Slider) MouseMoved(x, y int) {
	s.pointer = Vec2{X: float32(x), Y: float32(y)}
}

func (s *Slider) MouseButtonPressed(x, y int, button input.MouseButton) {
	if button != input.MouseButtonLeft {
		return
	}
	p := Vec2{X: float32(x), Y: float32(y)}
	if s.handle.Bounds().Contains(p) {
		s.dragging = true
		s.pointer = p
	}
}

func (s *Slider) MouseButtonReleased(_, _ int, button input.MouseButton) {
	if button == input.MouseButtonLeft {
		s.dragging = false
	}
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
