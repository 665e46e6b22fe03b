package ui

import (
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/internal/layout"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	KeyboardLowerMenuID = "virtKeyboard_lower"
	KeyboardUpperMenuID = "virtKeyboard_upper"
	KeyboardPanelID     = "virtKeyboardPanel"

	// VirtualKeyPrefix starts the id of every virtual keyboard button.
	VirtualKeyPrefix = "virtkey:"

	keyBack  = "back"
	keyCaps  = "caps"
	keyDone  = "done"
	keySpace = "space"

	keyboardColumns = 13
	keyboardSlide   = 250 * time.Millisecond
)

type key struct {
	lower   string
	upper   string
	special string
	span    int
}

type keyRow struct {
	keys     []key
	startCol int
}

func (r keyRow) spec() layout.RowSpec {
	spans := make([]int, len(r.keys))
	for i, k := range r.keys {
		spans[i] = k.span
	}
	return layout.RowSpec{Spans: spans, StartCol: r.startCol}
}

// charKeys pairs each lower value with its shifted value.
func charKeys(lower, upper []string) []key {
	keys := make([]key, len(lower))
	for i, c := range lower {
		keys[i] = key{lower: c, upper: upper[i], span: 1}
	}
	return keys
}

// letterKeys shifts letters to upper case and symbols via shifted.
func letterKeys(letters string, shifted map[rune]string) []key {
	keys := make([]key, 0, len(letters))
	for _, c := range letters {
		upper := string(c - 32)
		if s, ok := shifted[c]; ok {
			upper = s
		}
		keys = append(keys, key{lower: string(c), upper: upper, span: 1})
	}
	return keys
}

func createKeyRows() []keyRow {
	numbers := charKeys(
		[]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="},
		[]string{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "+"},
	)
	shifted := map[rune]string{
		'[': "{", ']': "}", '\\': "|",
		';': ":", '\'': "\"",
		',': "<", '.': ">", '/': "?",
	}

	return []keyRow{
		{keys: append(numbers, key{special: keyBack, span: 1})},
		{keys: letterKeys("qwertyuiop[]\\", shifted)},
		{keys: append(letterKeys("asdfghjkl;'", shifted), key{special: keyDone, span: 2})},
		{keys: append([]key{{special: keyCaps, span: 2}}, letterKeys("zxcvbnm,./", shifted)...)},
		{keys: []key{{special: keySpace, span: 9}}, startCol: 2},
	}
}

// virtualKeyboard is a pair of menus, lower and upper case, sharing one
// panel and space bar. Its buttons report to the Manager.
type virtualKeyboard struct {
	lower *Menu
	upper *Menu
	panel *Panel

	slide    float32
	offset   float32
	tween    *gween.Tween
	animated bool
}

func newVirtualKeyboard(ctx *Context, listener ButtonListener, animated bool) *virtualKeyboard {
	rows := createKeyRows()
	specs := make([]layout.RowSpec, len(rows))
	for i, r := range rows {
		specs[i] = r.spec()
	}
	dims := layout.CalculateKeyboardDimensions(layout.MaxColumns(specs...), len(rows), layout.DefaultKeySizes())

	p := dims.Panel
	kb := &virtualKeyboard{
		lower:    NewMenu(ctx, KeyboardLowerMenuID),
		upper:    NewMenu(ctx, KeyboardUpperMenuID),
		panel:    NewPanel(ctx, KeyboardPanelID, p.X, p.Y, p.W, p.H, "", false),
		animated: animated,
	}
	_, h := ctx.surface.Resolution()
	kb.slide = float32(h) - kb.panel.pos.Y

	var space *Button
	grids := map[*Menu][][]int{}
	for _, m := range []*Menu{kb.lower, kb.upper} {
		upper := m == kb.upper
		for r, row := range rows {
			rects, cols := dims.LayoutRow(r, specs[r])
			ids := make([]int, 0, len(row.keys))
			for i, k := range row.keys {
				sid := cols[i] + r*keyboardColumns
				if k.special == keySpace {
					sid = r * keyboardColumns
					ids = append(ids, sid)
					if space == nil {
						space = kb.newKey(ctx, k, rects[i], sid, upper, listener)
					}
					m.AddComponent(space)
					continue
				}
				ids = append(ids, sid)
				m.AddComponent(kb.newKey(ctx, k, rects[i], sid, upper, listener))
			}
			grids[m] = append(grids[m], ids)
		}
		// Added last so it sits behind every key.
		m.AddComponent(kb.panel)
		m.DefineSelectionGrid(grids[m])
	}
	return kb
}

func (kb *virtualKeyboard) newKey(ctx *Context, k key, r layout.Rect, sid int, upper bool, listener ButtonListener) *Button {
	value, label := k.lower, k.lower
	if upper {
		value, label = k.upper, k.upper
	}

	var icon string
	switch k.special {
	case keyBack:
		value, label, icon = keyBack, ctx.localize("KeyboardBack"), constants.IconBackspace
	case keyCaps:
		value, label, icon = keyCaps, ctx.localize("KeyboardCaps"), constants.IconCaps
	case keyDone:
		value, label, icon = keyDone, ctx.localize("KeyboardDone"), constants.IconDone
	case keySpace:
		value, label = keySpace, ctx.localize("KeyboardSpace")
	}

	b := NewButton(ctx, VirtualKeyPrefix+value, r.X, r.Y, r.W, r.H, label, listener, WithSelectionID(sid))
	if icon != "" {
		b.SetIcon(icon)
	}
	kb.panel.Attach(b)
	return b
}

func (kb *virtualKeyboard) isOpen() bool {
	return kb.lower.IsActive() || kb.upper.IsActive()
}

func (kb *virtualKeyboard) open() {
	kb.lower.Open(false)
	if !kb.animated {
		return
	}
	kb.panel.Move(0, kb.slide-kb.offset)
	kb.offset = kb.slide
	kb.tween = gween.New(kb.slide, 0, float32(keyboardSlide.Seconds()), ease.OutCubic)
}

func (kb *virtualKeyboard) close() {
	kb.lower.Close(false)
	kb.upper.Close(false)
	kb.settle()
}

// settle snaps the panel back to its resting place.
func (kb *virtualKeyboard) settle() {
	if kb.offset != 0 {
		kb.panel.Move(0, -kb.offset)
		kb.offset = 0
	}
	kb.tween = nil
}

// toggleCase swaps the open menu for the other case and carries the grid
// cursor across.
func (kb *virtualKeyboard) toggleCase() {
	from, to := kb.lower, kb.upper
	if kb.upper.IsActive() {
		from, to = kb.upper, kb.lower
	}
	x, y := from.Cursor()
	to.SetCursor(x, y)
	from.Close(false)
	to.Open(false)
}

// step advances the slide-in animation.
func (kb *virtualKeyboard) step(dt time.Duration) {
	if kb.tween == nil {
		return
	}
	v, done := kb.tween.Update(float32(dt.Seconds()))
	kb.panel.Move(0, v-kb.offset)
	kb.offset = v
	if done {
		kb.settle()
	}
}

func (kb *virtualKeyboard) menus() []*Menu {
	return []*Menu{kb.lower, kb.upper}
}
