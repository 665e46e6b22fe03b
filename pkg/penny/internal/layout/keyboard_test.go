package layout

import "testing"

func TestCalculateKeyboardDimensions(t *testing.T) {
	s := KeySizes{KeyWidth: 6, KeyHeight: 8, KeySpacingX: 1, KeySpacingY: 2, Margin: 2, Bottom: 4}
	d := CalculateKeyboardDimensions(10, 3, s)

	// 10 keys of 6 with 9 gaps of 1, plus margins.
	if d.Panel.W != 73 {
		t.Errorf("Panel.W = %v, want 73", d.Panel.W)
	}
	if d.Panel.X != 13.5 {
		t.Errorf("Panel.X = %v, want 13.5", d.Panel.X)
	}
	// 3 keys of 8 with 2 gaps of 2, plus margins.
	if d.Panel.H != 32 {
		t.Errorf("Panel.H = %v, want 32", d.Panel.H)
	}
	if d.Panel.Y != 64 {
		t.Errorf("Panel.Y = %v, want 64", d.Panel.Y)
	}
	if d.KeyStartX != 15.5 || d.KeyStartY != 66 {
		t.Errorf("key origin = (%v, %v), want (15.5, 66)", d.KeyStartX, d.KeyStartY)
	}
}

func TestLayoutRow(t *testing.T) {
	s := KeySizes{KeyWidth: 6, KeyHeight: 8, KeySpacingX: 1, KeySpacingY: 2}
	d := CalculateKeyboardDimensions(4, 2, s)

	rects, cols := d.LayoutRow(1, RowSpec{Spans: []int{2, 1}, StartCol: 1})
	if len(rects) != 2 {
		t.Fatalf("LayoutRow returned %d rects, want 2", len(rects))
	}

	wantCols := []int{1, 3}
	for i, c := range cols {
		if c != wantCols[i] {
			t.Errorf("cols[%d] = %d, want %d", i, c, wantCols[i])
		}
	}

	if rects[0].W != 13 {
		t.Errorf("two-column key width = %v, want 13", rects[0].W)
	}
	if got, want := rects[1].X-rects[0].X, float32(14); got != want {
		t.Errorf("key step = %v, want %v", got, want)
	}
	if got, want := rects[0].Y-d.KeyStartY, float32(10); got != want {
		t.Errorf("row offset = %v, want %v", got, want)
	}
}

func TestMaxColumns(t *testing.T) {
	rows := []RowSpec{
		{Spans: []int{1, 1, 1}},
		{Spans: []int{2, 1}, StartCol: 2},
		{Spans: []int{9}, StartCol: 2},
	}
	if got := MaxColumns(rows...); got != 11 {
		t.Errorf("MaxColumns() = %d, want 11", got)
	}
}
