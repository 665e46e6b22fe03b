package ui

import (
	"testing"

	"github.com/pennyengine/penny/pkg/penny/input"
)

// The panel covers (100, 50) to (600, 300); the attached button covers
// (200, 100) to (300, 150).
func newTestPanel(e *testEnv) (*Menu, *Panel, *Button, *Button) {
	m := NewMenu(e.ctx, "main")
	other := NewButton(e.ctx, "other", 70, 70, 10, 10, "other", nil)
	b := NewButton(e.ctx, "ok", 20, 20, 10, 10, "OK", nil)
	p := NewPanel(e.ctx, "panel", 10, 10, 50, 50, "Settings", true)
	m.AddComponent(other)
	m.AddComponent(b)
	m.AddComponent(p)
	p.Attach(b)
	openMenu(m)
	return m, p, b, other
}

func drag(m *Menu, fromX, fromY, toX, toY int) {
	m.MouseMoved(fromX, fromY)
	m.MouseButtonPressed(fromX, fromY, input.MouseButtonLeft)
	m.MouseMoved(toX, toY)
	m.MouseButtonReleased(toX, toY, input.MouseButtonLeft)
}

func TestPanelDragCarriesAttachments(t *testing.T) {
	e := newTestEnv()
	m, p, b, _ := newTestPanel(e)

	drag(m, 120, 60, 150, 80)

	if got := p.Position(); got != (Vec2{X: 130, Y: 70}) {
		t.Errorf("panel position = %v, want (130, 70)", got)
	}
	if got := b.Position(); got != (Vec2{X: 230, Y: 120}) {
		t.Errorf("attached position = %v, want (230, 120)", got)
	}

	// Released: further motion leaves it in place.
	m.MouseMoved(400, 200)
	if got := p.Position(); got != (Vec2{X: 130, Y: 70}) {
		t.Errorf("panel moved after release: %v", got)
	}
}

func TestPanelDragRaisesPanelAndAttachments(t *testing.T) {
	e := newTestEnv()
	m, p, b, other := newTestPanel(e)

	drag(m, 120, 60, 121, 61)

	want := map[Component]int{b: 0, p: 1, other: 2}
	for c, z := range want {
		if got, _ := c.Base().ZIndex(m); got != z {
			t.Errorf("z(%s) = %d, want %d", c.ID(), got, z)
		}
	}
}

func TestPanelYieldsToAttachedWidget(t *testing.T) {
	e := newTestEnv()
	m, p, _, _ := newTestPanel(e)

	drag(m, 250, 125, 400, 200)

	if got := p.Position(); got != (Vec2{X: 100, Y: 50}) {
		t.Errorf("panel dragged through its button: %v", got)
	}
}

func TestPanelNotDraggable(t *testing.T) {
	e := newTestEnv()
	m, p, _, _ := newTestPanel(e)
	p.SetDraggable(false)

	drag(m, 120, 60, 150, 80)

	if got := p.Position(); got != (Vec2{X: 100, Y: 50}) {
		t.Errorf("fixed panel moved to %v", got)
	}
}

func TestPanelAttach(t *testing.T) {
	e := newTestEnv()
	_, p, b, other := newTestPanel(e)

	p.AttachAt(other, 50, 50)
	if got, want := other.Bounds().Center(), p.Bounds().Center(); got != want {
		t.Errorf("AttachAt centre = %v, want %v", got, want)
	}
	if n := len(p.Attached()); n != 2 {
		t.Errorf("%d attachments, want 2", n)
	}

	p.Attach(b)
	if n := len(p.Attached()); n != 2 {
		t.Error("attaching twice duplicated the widget")
	}

	if p.AttachID("missing") {
		t.Error("AttachID(missing) = true")
	}
	if p.IsSelectable() {
		t.Error("panels are not selectable")
	}
}
