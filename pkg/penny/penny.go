// Package penny runs a retained-mode UI on SDL2: it opens the window,
// routes keyboard, pointer and gamepad input to the ui.Manager and drives
// the update and draw loop.
package penny

import (
	"errors"
	"log/slog"
	"time"

	"github.com/pennyengine/penny/pkg/penny/input"
	"github.com/pennyengine/penny/pkg/penny/internal/locale"
	"github.com/pennyengine/penny/pkg/penny/internal/logging"
	"github.com/pennyengine/penny/pkg/penny/internal/sdl2"
	"github.com/pennyengine/penny/pkg/penny/ui"
	"go.uber.org/atomic"
)

// App receives one Update per frame, after input has been dispatched and
// before the UI is updated.
type App interface {
	Update(dt time.Duration)
}

// Drawer is implemented by apps that draw over the UI.
type Drawer interface {
	Draw(s ui.Surface)
}

// Engine owns the window, the input pipeline and the UI Manager. Build it
// with New, call Run from the main goroutine and Close when done.
type Engine struct {
	opts Options
	log  *slog.Logger

	window    *sdl2.Window
	surface   *sdl2.Surface
	pump      *sdl2.EventPump
	joysticks *sdl2.Joysticks
	evdev     *input.EvdevSource

	gamepad   *input.Gamepad
	router    *input.Router
	localizer *locale.Localizer
	ctx       *ui.Context
	manager   *ui.Manager

	running atomic.Bool
	stopped atomic.Bool
	closed  bool
}

// New starts SDL, opens the window and wires the input pipeline into a new
// ui.Manager.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewInfrastructureError("options", err)
	}

	if opts.LogPath != "" {
		logging.SetLogPath(opts.LogPath)
	}
	logging.SetRawLevel(opts.LogLevel)
	log := logging.Logger()

	if err := sdl2.Init(); err != nil {
		return nil, NewInfrastructureError("sdl_init", err)
	}

	window, err := sdl2.NewWindow(opts.WindowTitle, sdl2.WindowOptions{
		Borderless:        opts.Window.Borderless,
		Resizable:         opts.Window.Resizable,
		Fullscreen:        opts.Window.Fullscreen,
		FullscreenDesktop: opts.Window.FullscreenDesktop,
		AlwaysOnTop:       opts.Window.AlwaysOnTop,
		Width:             opts.Window.Width,
		Height:            opts.Window.Height,
		RenderWidth:       opts.Window.RenderWidth,
		RenderHeight:      opts.Window.RenderHeight,
		VSync:             opts.Window.VSync,
	}, log)
	if err != nil {
		sdl2.Quit()
		return nil, NewInfrastructureError("create_window", err)
	}

	e := &Engine{opts: opts, log: log, window: window}

	var device input.Device
	if opts.Gamepad.EvdevPath != "" {
		src, err := input.OpenEvdev(opts.Gamepad.EvdevPath, log)
		if err != nil {
			log.Warn("Evdev gamepad unavailable, using SDL joysticks", "path", opts.Gamepad.EvdevPath, "error", err)
		} else {
			e.evdev = src
			device = src
		}
	}
	if device == nil {
		e.joysticks = sdl2.NewJoysticks(log)
		device = e.joysticks
	}

	e.pump = sdl2.NewEventPump(e.joysticks)
	e.surface = sdl2.NewSurface(window, e.pump, sdl2.SurfaceOptions{
		FontPath:        opts.FontPath,
		SpriteSheetPath: opts.SpriteSheetPath,
	}, log)

	e.gamepad = input.NewGamepad(device,
		input.WithDeadZones(opts.Gamepad.StickDeadZone, opts.Gamepad.TriggerDeadZone),
		input.WithTriggerThreshold(opts.Gamepad.TriggerThreshold),
		input.WithGamepadLogger(log),
	)
	e.router = input.NewRouter(e.gamepad, input.NewMode(), e.surface, log)

	theme := ui.DefaultTheme()
	theme.TextSize = opts.TextSize
	ctxOpts := []ui.ContextOption{
		ui.WithLogger(log),
		ui.WithTheme(theme),
		ui.WithGamepad(e.gamepad),
		ui.WithInputMode(e.router.Mode()),
	}
	if l, err := locale.New(opts.Locale, log); err != nil {
		log.Warn("Localization unavailable, using built-in labels", "locale", opts.Locale, "error", err)
	} else {
		e.localizer = l
		ctxOpts = append(ctxOpts, ui.WithLocalizer(l))
	}
	e.ctx = ui.NewContext(e.surface, ctxOpts...)

	e.manager = ui.NewManager(e.ctx,
		ui.WithKeyboardAnimation(opts.KeyboardAnimation),
		ui.WithNavigationRepeat(opts.Gamepad.RepeatDelay, opts.Gamepad.RepeatInterval),
	)
	e.router.AddListener(e.manager)

	if !e.gamepad.SelectLowestConnected() {
		log.Debug("No gamepad connected at start")
	}

	w, h := window.RenderSize()
	dw, dh := window.DisplaySize()
	log.Info("Engine started",
		"render_width", w, "render_height", h,
		"display_width", dw, "display_height", dh,
		"locale", opts.Locale,
	)
	return e, nil
}

func (e *Engine) Manager() *ui.Manager {
	return e.manager
}

func (e *Engine) Context() *ui.Context {
	return e.ctx
}

func (e *Engine) Router() *input.Router {
	return e.router
}

func (e *Engine) Gamepad() *input.Gamepad {
	return e.gamepad
}

func (e *Engine) Options() Options {
	return e.opts
}

// Localize resolves a message id in the configured locale.
func (e *Engine) Localize(id string) string {
	if e.localizer == nil {
		return id
	}
	return e.localizer.Localize(id)
}

// Run drives the frame loop until Stop is called or the window is closed.
// app may be nil.
func (e *Engine) Run(app App) error {
	if e == nil || e.closed {
		return ErrNotInitialized
	}
	if e.stopped.Load() {
		return ErrStopped
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	drawer, _ := app.(Drawer)
	last := time.Now()

	for !e.stopped.Load() {
		e.pump.Poll(e.dispatch)
		if e.evdev != nil {
			e.evdev.Poll(e.dispatch)
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		if app != nil {
			app.Update(dt)
		}
		e.manager.Update(dt)

		e.surface.Clear(e.ctx.Theme().Background)
		e.manager.Draw()
		if drawer != nil {
			drawer.Draw(e.surface)
		}
		e.surface.Present()
	}
	return nil
}

func (e *Engine) dispatch(ev input.Event) {
	if _, ok := ev.(input.QuitEvent); ok {
		e.log.Debug("Quit requested")
		e.Stop()
		return
	}
	e.router.Dispatch(ev)
}

// Stop ends Run after the current frame. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

// Close releases every resource New acquired. Run must have returned.
func (e *Engine) Close() error {
	if e == nil || e.closed {
		return ErrNotInitialized
	}
	if e.running.Load() {
		return errors.New("penny: Close called while running")
	}
	e.closed = true

	var errs []error
	if e.evdev != nil {
		if err := e.evdev.Close(); err != nil {
			errs = append(errs, NewInfrastructureError("close_evdev", err))
		}
	}
	if e.joysticks != nil {
		e.joysticks.CloseAll()
	}
	e.surface.Close()
	e.window.Destroy()
	sdl2.Quit()

	e.log.Info("Engine closed")
	logging.Close()
	return errors.Join(errs...)
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before New.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.Logger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLevel(level)
}
