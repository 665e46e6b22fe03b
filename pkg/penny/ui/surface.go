package ui

import "github.com/pennyengine/penny/pkg/penny/constants"

// Surface is the render target and pointer source the UI draws through.
type Surface interface {
	// Resolution is the size percentages are measured against.
	Resolution() (width, height int)
	// PointerPosition is the pointer in window coordinates.
	PointerPosition() Vec2

	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color, thickness float32)
	// DrawText draws text vertically centred on at.Y; at.X is the left edge,
	// centre or right edge depending on align. size is the line height.
	DrawText(text string, at Vec2, size float32, c Color, align constants.TextAlign)
	MeasureText(text string, size float32) Vec2
	// DrawIcon and DrawSprite report false when the asset is unavailable.
	DrawIcon(name string, r Rect, c Color) bool
	DrawSprite(src, dst Rect) bool
}

// InputMode reports which device the player is using.
type InputMode interface {
	UsingPointer() bool
}

// GamepadState is the polled gamepad view widgets read.
type GamepadState interface {
	IsButtonPressed(b constants.GamepadButton) bool
	IsConnected() bool
}

// Localizer resolves a message id to display text.
type Localizer interface {
	Localize(messageID string) string
}

type noGamepad struct{}

func (noGamepad) IsButtonPressed(constants.GamepadButton) bool { return false }
func (noGamepad) IsConnected() bool                            { return false }

type pointerMode struct{}

func (pointerMode) UsingPointer() bool { return true }

var defaultLabels = map[string]string{
	"KeyboardSpace": "space",
	"KeyboardDone":  "done",
	"KeyboardCaps":  "caps",
	"KeyboardBack":  "back",
}

type englishLabels struct{}

func (englishLabels) Localize(id string) string {
	if s, ok := defaultLabels[id]; ok {
		return s
	}
	return id
}
