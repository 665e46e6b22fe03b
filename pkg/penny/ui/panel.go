package ui

import (
	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

// Panel is a container that draws behind its attached widgets and, when
// draggable, carries them along when dragged. It is never selectable.
type Panel struct {
	BaseComponent

	title     string
	draggable bool
	attached  []Component

	mouseDown   bool
	lastPointer Vec2
}

func NewPanel(ctx *Context, id string, x, y, w, h float32, title string, draggable bool, opts ...ComponentOption) *Panel {
	p := &Panel{
		BaseComponent: newBaseComponent(ctx, id, x, y, w, h, false, AppearancePanel, buildConfig(opts)),
		title:         title,
		draggable:     draggable,
	}
	p.selectable = false
	return p
}

func (p *Panel) Title() string {
	return p.title
}

func (p *Panel) SetDraggable(draggable bool) {
	p.draggable = draggable
}

func (p *Panel) Attached() []Component {
	return append([]Component(nil), p.attached...)
}

// Attach makes c follow the panel.
func (p *Panel) Attach(c Component) {
	for _, a := range p.attached {
		if a.Base() == c.Base() {
			return
		}
	}
	p.attached = append(p.attached, c)
}

// AttachAt moves c so its centre sits at (x, y) percent of the panel, then
// attaches it.
func (p *Panel) AttachAt(c Component, x, y float32) {
	target := Vec2{X: p.pos.X + p.size.X*x/100, Y: p.pos.Y + p.size.Y*y/100}
	d := target.Sub(c.Base().Bounds().Center())
	c.Move(d.X, d.Y)
	p.Attach(c)
}

// AttachID attaches the first component with the given id found in any
// menu.
func (p *Panel) AttachID(id string) bool {
	c, ok := p.lookup(id)
	if ok {
		p.Attach(c)
	}
	return ok
}

func (p *Panel) AttachAtID(id string, x, y float32) bool {
	c, ok := p.lookup(id)
	if ok {
		p.AttachAt(c, x, y)
	}
	return ok
}

func (p *Panel) lookup(id string) (Component, bool) {
	c, ok := p.ctx.findComponent(id)
	if !ok {
		p.ctx.log.Warn("Panel could not find component to attach", "panel", p.id, "component", id)
	}
	return c, ok
}

func (p *Panel) Detach(c Component) {
	for i, a := range p.attached {
		if a.Base() == c.Base() {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
}

// Move shifts the panel and everything attached to it.
func (p *Panel) Move(dx, dy float32) {
	p.BaseComponent.Move(dx, dy)
	for _, a := range p.attached {
		a.Move(dx, dy)
	}
}

func (p *Panel) Hide() {
	p.BaseComponent.Hide()
	p.mouseDown = false
}

func (p *Panel) Render(s Surface) {
	r := p.Bounds()
	p.renderFrame(s, r, p.appearance)
	p.renderText(s, p.title, Vec2{X: r.X + r.W/2, Y: r.Y + p.textSize}, constants.TextAlignCenter)
}

func (p *Panel) MouseMoved(x, y int) {
	pointer := Vec2{X: float32(x), Y: float32(y)}
	if p.mouseDown && p.draggable {
		d := pointer.Sub(p.lastPointer)
		p.Move(d.X, d.Y)
	}
	p.lastPointer = pointer
}

// MouseButtonPressed starts a drag unless an active attached widget wants
// the press. A drag raises the panel, then each attachment above it.
func (p *Panel) MouseButtonPressed(x, y int, button input.MouseButton) {
	pointer := Vec2{X: float32(x), Y: float32(y)}
	if !p.draggable || button != input.MouseButtonLeft || !p.Bounds().Contains(pointer) {
		return
	}
	for _, a := range p.attached {
		if a.Base().IsActive() && a.HasPointerPriority() {
			return
		}
	}
	p.mouseDown = true
	p.lastPointer = pointer
	p.MoveToFront()
	for _, a := range p.attached {
		a.Base().MoveToFront()
	}
}

func (p *Panel) MouseButtonReleased(_, _ int, button input.MouseButton) {
	if button == input.MouseButtonLeft {
		p.mouseDown = false
	}
}
