package sdl2

import (
	"reflect"
	"testing"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/ui"
	"github.com/veandco/go-sdl2/sdl"
)

func TestToSDLRect(t *testing.T) {
	tests := []struct {
		name string
		in   ui.Rect
		want sdl.Rect
	}{
		{"integral", ui.Rect{X: 10, Y: 20, W: 30, H: 40}, sdl.Rect{X: 10, Y: 20, W: 30, H: 40}},
		{"edges rounded independently", ui.Rect{X: 0.4, Y: 0.6, W: 10.2, H: 9.8}, sdl.Rect{X: 0, Y: 1, W: 11, H: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toSDLRect(tt.in); got != tt.want {
				t.Errorf("toSDLRect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrokeRects(t *testing.T) {
	r := sdl.Rect{X: 10, Y: 10, W: 20, H: 10}

	want := []sdl.Rect{
		{X: 10, Y: 10, W: 20, H: 2},
		{X: 10, Y: 18, W: 20, H: 2},
		{X: 10, Y: 12, W: 2, H: 6},
		{X: 28, Y: 12, W: 2, H: 6},
	}
	if got := strokeRects(r, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("strokeRects(2) = %v, want %v", got, want)
	}
	if got := strokeRects(r, 5); !reflect.DeepEqual(got, []sdl.Rect{r}) {
		t.Errorf("thick outline should fill the rect, got %v", got)
	}
	if got := strokeRects(r, 0); got != nil {
		t.Errorf("zero thickness = %v, want nothing", got)
	}
}

func TestAlignX(t *testing.T) {
	tests := []struct {
		align constants.TextAlign
		want  int32
	}{
		{constants.TextAlignLeft, 100},
		{constants.TextAlignCenter, 80},
		{constants.TextAlignRight, 60},
	}
	for _, tt := range tests {
		if got := alignX(tt.align, 100, 40); got != tt.want {
			t.Errorf("alignX(%d) = %d, want %d", tt.align, got, tt.want)
		}
	}
}
