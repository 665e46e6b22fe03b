package ui

import (
	"testing"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

type sliderLog struct {
	values []float32
}

func (l *sliderLog) SliderMoved(_ string, v float32) {
	l.values = append(l.values, v)
}

// newTestSlider returns a slider whose rail spans x 100..600, y 50..70.
func newTestSlider(e *testEnv, log SliderListener, opts ...ComponentOption) (*Menu, *Slider) {
	m := NewMenu(e.ctx, "main")
	s := NewSlider(e.ctx, "volume", 10, 10, 50, 4, "Volume", log, opts...)
	m.AddComponent(s)
	return m, s
}

func TestSliderSetValue(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0.3, 0.3},
		{0, 0},
		{1, 1},
		{-0.5, 0},
		{1.5, 1},
	}
	e := newTestEnv()
	_, s := newTestSlider(e, nil)
	for _, tt := range tests {
		s.SetValue(tt.in)
		if got := s.Value(); got != tt.want {
			t.Errorf("SetValue(%v): Value() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSliderHandleFollowsValue(t *testing.T) {
	e := newTestEnv()
	_, s := newTestSlider(e, nil)
	rail := s.Bounds()
	h := s.Handle()

	s.SetValue(0)
	if h.Position().X != rail.X {
		t.Errorf("handle at 0 = %v, want %v", h.Position().X, rail.X)
	}
	s.SetValue(1)
	if right := h.Position().X + h.Size().X; right != rail.X+rail.W {
		t.Errorf("handle right edge at 1 = %v, want %v", right, rail.X+rail.W)
	}
}

func TestSliderDragToExtremes(t *testing.T) {
	e := newTestEnv()
	log := &sliderLog{}
	m, s := newTestSlider(e, log)
	openMenu(m)

	hx, hy := center(s.Handle())
	m.MouseMoved(hx, hy)
	m.MouseButtonPressed(hx, hy, input.MouseButtonLeft)
	if !s.HasPointerPriority() {
		t.Fatal("slider should claim the pointer while dragging")
	}

	m.MouseMoved(0, hy)
	m.Update()
	if s.Value() != 0 {
		t.Errorf("dragged past the left end: Value() = %v, want 0", s.Value())
	}

	m.MouseMoved(990, hy)
	m.Update()
	if s.Value() != 1 {
		t.Errorf("dragged past the right end: Value() = %v, want 1", s.Value())
	}

	m.MouseButtonReleased(990, hy, input.MouseButtonLeft)
	m.MouseMoved(0, hy)
	m.Update()
	if s.Value() != 1 {
		t.Error("slider kept following the pointer after release")
	}

	if len(log.values) != 2 || log.values[0] != 0 || log.values[1] != 1 {
		t.Errorf("listener saw %v, want [0 1]", log.values)
	}
}

func TestSliderGamepadStep(t *testing.T) {
	e := newTestEnv()
	e.mode.pointer = false
	log := &sliderLog{}
	m, s := newTestSlider(e, log, WithSelectionID(0))
	s.SetStepRate(0.25)
	m.DefineSelectionGrid([][]int{{0}})
	openMenu(m)

	if len(log.values) != 0 {
		t.Fatalf("listener called without a change: %v", log.values)
	}

	e.pad.held[constants.GamepadButtonDPadRight] = true
	for i := 0; i < 3; i++ {
		m.Update()
	}

	want := []float32{0.75, 1}
	if len(log.values) != len(want) {
		t.Fatalf("listener saw %v, want %v", log.values, want)
	}
	for i := range want {
		if log.values[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, log.values[i], want[i])
		}
	}

	e.pad.held[constants.GamepadButtonDPadRight] = false
	e.pad.held[constants.GamepadButtonDPadLeft] = true
	m.Update()
	if s.Value() != 0.75 {
		t.Errorf("Value() after one step left = %v, want 0.75", s.Value())
	}
}

func TestSliderIgnoresDPadWhenNotSelected(t *testing.T) {
	e := newTestEnv()
	m, s := newTestSlider(e, nil)
	openMenu(m)

	e.pad.held[constants.GamepadButtonDPadRight] = true
	m.Update()
	if s.Value() != 0.5 {
		t.Errorf("Value() = %v, want 0.5", s.Value())
	}
}

func TestSliderMoveCarriesHandle(t *testing.T) {
	e := newTestEnv()
	_, s := newTestSlider(e, nil)
	before := s.Handle().Position()

	s.Move(10, 20)
	after := s.Handle().Position()
	if after.X-before.X != 10 || after.Y-before.Y != 20 {
		t.Errorf("handle moved by (%v, %v), want (10, 20)", after.X-before.X, after.Y-before.Y)
	}
}
