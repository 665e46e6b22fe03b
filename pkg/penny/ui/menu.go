package ui

import (
	"cmp"
	"slices"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

// Menu owns an ordered set of components, child menus and an optional
// selection grid for gamepad navigation.
type Menu struct {
	ctx    *Context
	handle menuHandle
	id     string

	// components is kept sorted by descending z so rendering in slice
	// order paints the front-most widget last.
	components []Component
	zCounter   int

	parent   *Menu
	children []*Menu

	active            bool
	pendingActivation bool

	grid                [][]int
	navigation          bool
	cursorX, cursorY    int
	keepSelectionOnMove bool
}

// NewMenu creates a closed menu and registers it with ctx.
func NewMenu(ctx *Context, id string) *Menu {
	m := &Menu{
		ctx:        ctx,
		id:         id,
		navigation: true,
		cursorX:    -1,
		cursorY:    -1,
	}
	m.handle = ctx.register(m)
	return m
}

func (m *Menu) ID() string {
	return m.id
}

func (m *Menu) IsActive() bool {
	return m.active
}

func (m *Menu) Parent() *Menu {
	return m.parent
}

func (m *Menu) Children() []*Menu {
	return append([]*Menu(nil), m.children...)
}

// AddComponent appends c behind every component already in the menu.
func (m *Menu) AddComponent(c Component) {
	b := c.Base()
	if _, ok := b.owners[m.handle]; ok {
		m.ctx.log.Warn("Component already in menu", "menu", m.id, "component", c.ID())
		return
	}
	b.setOwner(m.handle, m.zCounter)
	m.zCounter++
	m.components = append(m.components, c)
	m.sortComponents()
}

// RemoveComponent drops the component with the given id. Its z index is not
// reused.
func (m *Menu) RemoveComponent(id string) bool {
	for i, c := range m.components {
		if c.ID() == id {
			c.Base().dropOwner(m.handle)
			m.components = append(m.components[:i], m.components[i+1:]...)
			return true
		}
	}
	return false
}

// Component returns the component with the given id, logging a warning when
// there is none.
func (m *Menu) Component(id string) Component {
	c, ok := m.LookupComponent(id)
	if !ok {
		m.ctx.log.Warn("Did not find component", "menu", m.id, "component", id)
	}
	return c
}

func (m *Menu) LookupComponent(id string) (Component, bool) {
	for _, c := range m.components {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Components returns the components in paint order, back to front.
func (m *Menu) Components() []Component {
	return append([]Component(nil), m.components...)
}

// ZOrder returns the components front to back.
func (m *Menu) ZOrder() []Component {
	s := m.Components()
	slices.Reverse(s)
	return s
}

// ClearComponents removes every component.
func (m *Menu) ClearComponents() {
	for _, c := range m.components {
		c.Base().dropOwner(m.handle)
	}
	m.components = nil
}

// AddChild attaches child beneath m. A menu cannot adopt itself or one of
// its ancestors.
func (m *Menu) AddChild(child *Menu) bool {
	for a := m; a != nil; a = a.parent {
		if a == child {
			m.ctx.log.Warn("Refusing to add menu as its own descendant", "menu", m.id, "child", child.id)
			return false
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = m
	m.children = append(m.children, child)
	return true
}

func (m *Menu) removeChild(child *Menu) {
	for i, c := range m.children {
		if c == child {
			m.children = append(m.children[:i], m.children[i+1:]...)
			return
		}
	}
}

// Child returns the direct child with the given id, logging a warning when
// there is none.
func (m *Menu) Child(id string) *Menu {
	c, ok := m.LookupChild(id)
	if !ok {
		m.ctx.log.Warn("Did not find child menu", "menu", m.id, "child", id)
	}
	return c
}

func (m *Menu) LookupChild(id string) (*Menu, bool) {
	for _, c := range m.children {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// Open activates the menu. Its components are shown on the next update.
func (m *Menu) Open(closeParents bool) {
	m.active = true
	m.pendingActivation = true
	if !m.ctx.UsingPointer() {
		m.seedCursor()
	}
	if closeParents && m.parent != nil {
		m.parent.Close(false)
	}
}

// Close hides every component, clears selection and the cursor.
func (m *Menu) Close(openParent bool) {
	m.active = false
	m.pendingActivation = false
	for _, c := range m.components {
		c.Hide()
		c.Base().selected = false
	}
	m.cursorX, m.cursorY = -1, -1
	if openParent && m.parent != nil {
		m.parent.Open(true)
	}
}

// DefineSelectionGrid sets the navigation grid. Each cell holds a selection
// id; rows may have different lengths. Empty rows are dropped.
func (m *Menu) DefineSelectionGrid(grid [][]int) {
	m.grid = m.grid[:0]
	for _, row := range grid {
		if len(row) > 0 {
			m.grid = append(m.grid, append([]int(nil), row...))
		}
	}
	m.cursorX, m.cursorY = -1, -1
}

func (m *Menu) EnableGamepadNavigation() {
	m.navigation = true
}

func (m *Menu) DisableGamepadNavigation() {
	m.navigation = false
}

func (m *Menu) GamepadNavigationEnabled() bool {
	return m.navigation
}

// SetKeepSelectionOnPointerMove stops pointer motion from clearing the
// gamepad selection.
func (m *Menu) SetKeepSelectionOnPointerMove(keep bool) {
	m.keepSelectionOnMove = keep
}

// Cursor returns the grid cursor; (-1, -1) means unset.
func (m *Menu) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// SetCursor places the cursor, clamped to the grid, and selects the cell.
func (m *Menu) SetCursor(x, y int) {
	if len(m.grid) == 0 || x < 0 || y < 0 {
		m.cursorX, m.cursorY = -1, -1
		return
	}
	m.cursorY = min(y, len(m.grid)-1)
	m.cursorX = min(x, len(m.grid[m.cursorY])-1)
	m.applySelection()
}

func (m *Menu) navigable() bool {
	return m.navigation && len(m.grid) > 0
}

// seedCursor puts an unset cursor on the origin cell and reports whether it
// did.
func (m *Menu) seedCursor() bool {
	if !m.navigable() || m.cursorX >= 0 {
		return false
	}
	m.cursorX, m.cursorY = 0, 0
	return true
}

func (m *Menu) navigate(b constants.GamepadButton) {
	if !m.seedCursor() {
		switch b {
		case constants.GamepadButtonDPadUp:
			m.cursorY = max(m.cursorY-1, 0)
		case constants.GamepadButtonDPadDown:
			m.cursorY = min(m.cursorY+1, len(m.grid)-1)
		case constants.GamepadButtonDPadLeft:
			m.cursorX = max(m.cursorX-1, 0)
		case constants.GamepadButtonDPadRight:
			m.cursorX++
		}
		m.cursorX = min(m.cursorX, len(m.grid[m.cursorY])-1)
	}
	m.applySelection()
}

// applySelection selects the active widgets whose selection id matches the
// cursor cell and deselects everything else.
func (m *Menu) applySelection() {
	if m.cursorY < 0 || m.cursorY >= len(m.grid) {
		return
	}
	id := m.grid[m.cursorY][m.cursorX]
	for _, c := range m.components {
		b := c.Base()
		sid, ok := b.SelectionID()
		b.selected = ok && sid == id && b.selectable && b.active
	}
}

func (m *Menu) deselectAll() {
	for _, c := range m.components {
		c.Base().selected = false
	}
}

func (m *Menu) sortComponents() {
	slices.SortStableFunc(m.components, func(a, b Component) int {
		return cmp.Compare(b.Base().owners[m.handle], a.Base().owners[m.handle])
	})
}

// MoveForward swaps c with the component one step closer to the front.
func (m *Menu) MoveForward(c Component) {
	m.moveForward(c.Base())
}

// MoveBack swaps c with the component one step further back. It does
// nothing when c is already the back-most component.
func (m *Menu) MoveBack(c Component) {
	m.moveBack(c.Base())
}

// MoveToFront gives c z index 0 and renumbers the rest behind it in their
// existing order.
func (m *Menu) MoveToFront(c Component) {
	m.moveToFront(c.Base())
}

func (m *Menu) moveForward(b *BaseComponent) {
	z, ok := b.owners[m.handle]
	if !ok {
		m.ctx.log.Warn("Component is not in menu", "menu", m.id, "component", b.id)
		return
	}
	if z == 0 {
		return
	}
	m.swapZ(b, z, z-1)
}

func (m *Menu) moveBack(b *BaseComponent) {
	z, ok := b.owners[m.handle]
	if !ok {
		m.ctx.log.Warn("Component is not in menu", "menu", m.id, "component", b.id)
		return
	}
	back := z
	for _, c := range m.components {
		back = max(back, c.Base().owners[m.handle])
	}
	if z == back {
		return
	}
	m.swapZ(b, z, z+1)
}

func (m *Menu) swapZ(b *BaseComponent, from, to int) {
	for _, c := range m.components {
		other := c.Base()
		if other != b && other.owners[m.handle] == to {
			other.owners[m.handle] = from
		}
	}
	b.owners[m.handle] = to
	m.sortComponents()
}

func (m *Menu) moveToFront(b *BaseComponent) {
	if _, ok := b.owners[m.handle]; !ok {
		m.ctx.log.Warn("Component is not in menu", "menu", m.id, "component", b.id)
		return
	}
	order := make([]*BaseComponent, 0, len(m.components))
	order = append(order, b)
	for i := len(m.components) - 1; i >= 0; i-- {
		if other := m.components[i].Base(); other != b {
			order = append(order, other)
		}
	}
	for z, other := range order {
		other.owners[m.handle] = z
	}
	m.sortComponents()
}

// Update shows components on the first update after Open, then updates
// every active component.
func (m *Menu) Update() {
	m.sortComponents()
	if m.pendingActivation {
		m.pendingActivation = false
		for _, c := range m.components {
			c.Show()
		}
		if !m.ctx.UsingPointer() && m.navigable() {
			m.seedCursor()
			m.applySelection()
		}
	}
	for _, c := range m.snapshot() {
		if c.Base().active {
			c.Update()
		}
	}
}

// Render paints active components back to front.
func (m *Menu) Render(s Surface) {
	for _, c := range m.components {
		if c.Base().active {
			c.Render(s)
		}
	}
}

func (m *Menu) snapshot() []Component {
	return append([]Component(nil), m.components...)
}

// each calls fn for every active component, front-most first. Handlers may
// reorder the menu while it runs.
func (m *Menu) each(fn func(Component)) {
	s := m.snapshot()
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Base().active {
			fn(s[i])
		}
	}
}

func (m *Menu) KeyPressed(k input.Key) {
	m.each(func(c Component) { c.KeyPressed(k) })
}

func (m *Menu) KeyReleased(k input.Key) {
	m.each(func(c Component) { c.KeyReleased(k) })
}

func (m *Menu) TextEntered(r rune) {
	m.each(func(c Component) { c.TextEntered(r) })
}

func (m *Menu) MouseButtonPressed(x, y int, b input.MouseButton) {
	m.each(func(c Component) { c.MouseButtonPressed(x, y, b) })
}

func (m *Menu) MouseButtonReleased(x, y int, b input.MouseButton) {
	m.each(func(c Component) { c.MouseButtonReleased(x, y, b) })
}

// MouseMoved clears the grid cursor and, unless told otherwise, the
// selection before forwarding.
func (m *Menu) MouseMoved(x, y int) {
	m.cursorX, m.cursorY = -1, -1
	if !m.keepSelectionOnMove {
		m.deselectAll()
	}
	m.each(func(c Component) { c.MouseMoved(x, y) })
}

func (m *Menu) MouseWheelScrolled(dx, dy float32) {
	m.each(func(c Component) { c.MouseWheelScrolled(dx, dy) })
}

// GamepadButtonPressed moves the grid cursor on D-pad presses, then
// forwards to every active component not blocking gamepad input.
func (m *Menu) GamepadButtonPressed(b constants.GamepadButton) {
	if b.IsDirectional() && m.navigable() {
		m.navigate(b)
	}
	m.each(func(c Component) {
		if !c.Base().blockGamepadInput {
			c.GamepadButtonPressed(b)
		}
	})
}

func (m *Menu) GamepadButtonReleased(b constants.GamepadButton) {
	m.each(func(c Component) {
		if !c.Base().blockGamepadInput {
			c.GamepadButtonReleased(b)
		}
	})
}

func (m *Menu) VirtualKeyboardClosed() {
	m.each(func(c Component) { c.VirtualKeyboardClosed() })
}
