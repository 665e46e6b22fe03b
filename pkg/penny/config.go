package penny

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/internal/logging"
	"golang.org/x/text/language"
)

// Options configures the engine. It is also the schema of the TOML file
// LoadOptions reads.
type Options struct {
	WindowTitle     string        `toml:"window_title"`
	Window          WindowOptions `toml:"window"`
	FontPath        string        `toml:"font_path"`
	TextSize        float32       `toml:"text_size"` // Default label height, percent of screen height
	SpriteSheetPath string        `toml:"sprite_sheet"`
	LogPath         string        `toml:"log_path"` // Full path including filename; parent directories are created
	LogLevel        string        `toml:"log_level"`
	Locale          string        `toml:"locale"` // BCP 47 tag, e.g. "en" or "de"

	KeyboardAnimation bool           `toml:"keyboard_animation"`
	Gamepad           GamepadOptions `toml:"gamepad"`
}

// WindowOptions are the SDL window flags and sizes. Zero sizes use the
// display mode; zero render sizes follow the window.
type WindowOptions struct {
	Width             int32 `toml:"width"`
	Height            int32 `toml:"height"`
	RenderWidth       int32 `toml:"render_width"`
	RenderHeight      int32 `toml:"render_height"`
	Borderless        bool  `toml:"borderless"`
	Resizable         bool  `toml:"resizable"`
	Fullscreen        bool  `toml:"fullscreen"`
	FullscreenDesktop bool  `toml:"fullscreen_desktop"`
	AlwaysOnTop       bool  `toml:"always_on_top"`
	VSync             bool  `toml:"vsync"`
}

// GamepadOptions tune the gamepad layer. Dead zones and the trigger
// threshold are in normalised axis units, 0 to 100.
type GamepadOptions struct {
	StickDeadZone    float32       `toml:"stick_dead_zone"`
	TriggerDeadZone  float32       `toml:"trigger_dead_zone"`
	TriggerThreshold float32       `toml:"trigger_threshold"`
	RepeatDelay      time.Duration `toml:"repeat_delay"`
	RepeatInterval   time.Duration `toml:"repeat_interval"`
	EvdevPath        string        `toml:"evdev_path"` // Read this device directly instead of SDL joysticks (Linux)
}

func DefaultOptions() Options {
	return Options{
		WindowTitle:       constants.DefaultWindowTitle,
		Window:            WindowOptions{Resizable: true, VSync: true},
		TextSize:          3,
		LogLevel:          constants.DefaultLogLevel,
		Locale:            constants.DefaultLocale,
		KeyboardAnimation: true,
		Gamepad: GamepadOptions{
			StickDeadZone:    constants.DefaultStickDeadZone,
			TriggerDeadZone:  constants.DefaultTriggerDeadZone,
			TriggerThreshold: constants.DefaultTriggerPressThreshold,
			RepeatDelay:      constants.DefaultRepeatDelay,
			RepeatInterval:   constants.DefaultRepeatInterval,
		},
	}
}

// LoadOptions decodes the TOML file at path over DefaultOptions, then
// applies environment overrides. Unknown keys are logged and ignored.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, NewInfrastructureError("load_options", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Logger().Warn("Ignoring unknown configuration keys", "path", path, "keys", keys)
	}

	opts.applyEnv()

	if err := opts.Validate(); err != nil {
		return Options{}, NewInfrastructureError("load_options", err)
	}
	return opts, nil
}

func (o *Options) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(constants.LogLevelEnvVar)); v != "" {
		o.LogLevel = v
	}
}

// Validate reports the first option that cannot be used.
func (o Options) Validate() error {
	if o.Locale != "" {
		if _, err := language.Parse(o.Locale); err != nil {
			return fmt.Errorf("locale %q: %w", o.Locale, err)
		}
	}
	if o.TextSize <= 0 || o.TextSize > 100 {
		return fmt.Errorf("text_size %v out of range (0, 100]", o.TextSize)
	}

	w := o.Window
	if w.Width < 0 || w.Height < 0 || w.RenderWidth < 0 || w.RenderHeight < 0 {
		return errors.New("window sizes must not be negative")
	}
	if (w.RenderWidth == 0) != (w.RenderHeight == 0) {
		return errors.New("render_width and render_height must be set together")
	}

	g := o.Gamepad
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"stick_dead_zone", g.StickDeadZone},
		{"trigger_dead_zone", g.TriggerDeadZone},
		{"trigger_threshold", g.TriggerThreshold},
	} {
		if f.value < 0 || f.value > constants.AxisMax {
			return fmt.Errorf("gamepad.%s %v out of range [0, %v]", f.name, f.value, constants.AxisMax)
		}
	}
	if g.TriggerThreshold <= g.TriggerDeadZone {
		return errors.New("gamepad.trigger_threshold must exceed trigger_dead_zone")
	}
	if g.RepeatDelay <= 0 || g.RepeatInterval <= 0 {
		return errors.New("gamepad repeat delay and interval must be positive")
	}
	return nil
}
