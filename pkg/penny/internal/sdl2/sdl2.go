// Package sdl2 is the SDL2 backend: window and renderer, the ui.Surface the
// widgets draw through, the event pump feeding the input router and the
// joystick Device the gamepad layer polls.
package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init starts the SDL subsystems the engine uses.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG); err != nil {
		ttf.Quit()
		sdl.Quit()
		return fmt.Errorf("img init: %w", err)
	}

	sdl.JoystickEventState(sdl.ENABLE)
	sdl.StartTextInput()
	return nil
}

// Quit shuts SDL down. Windows and joysticks must be closed first.
func Quit() {
	sdl.StopTextInput()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
