package ui_test

import (
	"fmt"
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
	"github.com/pennyengine/penny/pkg/penny/ui"
)

// headless satisfies ui.Surface without drawing anything.
type headless struct{}

func (headless) Resolution() (int, int)                  { return 1280, 720 }
func (headless) PointerPosition() ui.Vec2                { return ui.Vec2{} }
func (headless) FillRect(ui.Rect, ui.Color)              {}
func (headless) StrokeRect(ui.Rect, ui.Color, float32)   {}
func (headless) DrawIcon(string, ui.Rect, ui.Color) bool { return false }
func (headless) DrawSprite(ui.Rect, ui.Rect) bool        { return false }

func (headless) DrawText(string, ui.Vec2, float32, ui.Color, constants.TextAlign) {}

func (headless) MeasureText(text string, size float32) ui.Vec2 {
	return ui.Vec2{X: float32(len(text)) * size / 2, Y: size}
}

func Example() {
	ctx := ui.NewContext(headless{})
	mgr := ui.NewManager(ctx, ui.WithKeyboardAnimation(false))

	menu := mgr.NewMenu("main")
	menu.AddComponent(ui.NewButton(ctx, "play", 40, 40, 20, 10, "Play", ui.ButtonFunc(func(id string) {
		fmt.Println("pressed", id)
	})))
	menu.Open(false)
	mgr.Update(time.Second / 60)

	mgr.MouseButtonPressed(600, 300, input.MouseButtonLeft)
	mgr.MouseButtonReleased(600, 300, input.MouseButtonLeft)
	// Output: pressed play
}
