package sdl2

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
	frameMillis     = 16
)

// Window wraps the SDL window and renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	log      *slog.Logger

	renderW, renderH int32
	hasVSync         bool
	lastPresent      uint64
}

// NewWindow opens a window. In development mode it is windowed at
// 1024x768 unless WINDOW_WIDTH or WINDOW_HEIGHT say otherwise.
func NewWindow(title string, opts WindowOptions, log *slog.Logger) (*Window, error) {
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			log.Error("Failed to get display mode", "error", err)
			width, height = devWindowWidth, devWindowHeight
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		opts.FullscreenDesktop = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth, log)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight, log)
	}

	log.Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.flags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, opts.rendererFlags())
	if err != nil {
		log.Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderW, renderH := width, height
	if opts.RenderWidth > 0 && opts.RenderHeight > 0 {
		renderW, renderH = opts.RenderWidth, opts.RenderHeight
	}
	if err := renderer.SetLogicalSize(renderW, renderH); err != nil {
		log.Warn("Failed to set render resolution", "width", renderW, "height", renderH, "error", err)
	}
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		log.Warn("Failed to enable alpha blending", "error", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		window:   window,
		renderer: renderer,
		log:      log,
		renderW:  renderW,
		renderH:  renderH,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32, log *slog.Logger) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		log.Warn("Invalid window dimension; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) Renderer() *sdl.Renderer {
	return w.renderer
}

// RenderSize is the logical resolution widgets are laid out against.
func (w *Window) RenderSize() (int32, int32) {
	return w.renderW, w.renderH
}

// DisplaySize is the window size in screen pixels.
func (w *Window) DisplaySize() (int32, int32) {
	return w.window.GetSize()
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Present swaps the render buffer and holds the frame to about 60fps when
// vsync is not available.
func (w *Window) Present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresent; elapsed < frameMillis {
			sdl.Delay(uint32(frameMillis - elapsed))
		}
		w.lastPresent = sdl.GetTicks64()
	}
}

func (w *Window) Destroy() {
	if err := w.renderer.Destroy(); err != nil {
		w.log.Warn("Failed to destroy renderer", "error", err)
	}
	if err := w.window.Destroy(); err != nil {
		w.log.Warn("Failed to destroy window", "error", err)
	}
}
