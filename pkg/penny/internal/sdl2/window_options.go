package sdl2

import "github.com/veandco/go-sdl2/sdl"

type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE
	Fullscreen        bool // SDL_WINDOW_FULLSCREEN
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	AlwaysOnTop       bool // SDL_WINDOW_ALWAYS_ON_TOP
	Hidden            bool // omits SDL_WINDOW_SHOWN

	// Width and Height of zero use the current display mode.
	Width  int32
	Height int32

	// RenderWidth and RenderHeight fix the logical resolution the UI lays
	// out against. Zero follows the window size.
	RenderWidth  int32
	RenderHeight int32

	VSync bool
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}

func (wo WindowOptions) rendererFlags() uint32 {
	flags := uint32(sdl.RENDERER_ACCELERATED | sdl.RENDERER_TARGETTEXTURE)
	if wo.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	return flags
}
