// Package layout computes virtual keyboard geometry in percent of the
// screen, so the result holds for any resolution.
package layout

// Rect is a rectangle in percent of the screen.
type Rect struct {
	X, Y, W, H float32
}

// KeySizes holds the size of one key column and the gaps between keys.
type KeySizes struct {
	KeyWidth    float32
	KeyHeight   float32
	KeySpacingX float32
	KeySpacingY float32
	Margin      float32 // Between the keys and the panel edge
	Bottom      float32 // Between the panel and the screen bottom
}

func DefaultKeySizes() KeySizes {
	return KeySizes{
		KeyWidth:    5.6,
		KeyHeight:   7,
		KeySpacingX: 0.8,
		KeySpacingY: 1.2,
		Margin:      2,
		Bottom:      2,
	}
}

// KeyboardDimensions holds calculated keyboard positioning values.
// This is computed once and reused across key placement.
type KeyboardDimensions struct {
	Sizes     KeySizes
	Columns   int
	Rows      int
	Panel     Rect
	KeyStartX float32
	KeyStartY float32
}

// CalculateKeyboardDimensions centres a grid of columns by rows keys
// horizontally and anchors it to the bottom of the screen.
func CalculateKeyboardDimensions(columns, rows int, s KeySizes) KeyboardDimensions {
	keysW := span(columns, s.KeyWidth, s.KeySpacingX)
	keysH := span(rows, s.KeyHeight, s.KeySpacingY)
	panel := Rect{
		W: keysW + 2*s.Margin,
		H: keysH + 2*s.Margin,
	}
	panel.X = (100 - panel.W) / 2
	panel.Y = 100 - panel.H - s.Bottom

	return KeyboardDimensions{
		Sizes:     s,
		Columns:   columns,
		Rows:      rows,
		Panel:     panel,
		KeyStartX: panel.X + s.Margin,
		KeyStartY: panel.Y + s.Margin,
	}
}

// KeyRect returns the rectangle of a key starting at column col of row
// and covering cols columns.
func (d KeyboardDimensions) KeyRect(row, col, cols int) Rect {
	s := d.Sizes
	return Rect{
		X: d.KeyStartX + float32(col)*(s.KeyWidth+s.KeySpacingX),
		Y: d.KeyStartY + float32(row)*(s.KeyHeight+s.KeySpacingY),
		W: span(cols, s.KeyWidth, s.KeySpacingX),
		H: s.KeyHeight,
	}
}

// RowSpec defines a single row: the column span of each key in order and
// the column the first key starts at.
type RowSpec struct {
	Spans    []int
	StartCol int
}

// Columns is the number of columns the row covers, including its offset.
func (r RowSpec) Columns() int {
	n := r.StartCol
	for _, s := range r.Spans {
		n += s
	}
	return n
}

// MaxColumns finds the widest of a set of rows.
func MaxColumns(rows ...RowSpec) int {
	widest := 0
	for _, r := range rows {
		widest = max(widest, r.Columns())
	}
	return widest
}

// LayoutRow positions every key of a row and returns, for each key, its
// rectangle and the column it starts at.
func (d KeyboardDimensions) LayoutRow(row int, spec RowSpec) (rects []Rect, cols []int) {
	col := spec.StartCol
	for _, s := range spec.Spans {
		rects = append(rects, d.KeyRect(row, col, s))
		cols = append(cols, col)
		col += s
	}
	return rects, cols
}

func span(n int, size, spacing float32) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*size + float32(n-1)*spacing
}
