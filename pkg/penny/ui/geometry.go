package ui

// Vec2 is a point or extent in device pixels.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Rect is an axis-aligned rectangle in device pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Inset shrinks r by p on each side.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// HexColor converts 0xRRGGBB to an opaque Color.
func HexColor(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
