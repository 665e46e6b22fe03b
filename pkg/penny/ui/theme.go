package ui

// Appearance is the style token a widget recomputes every update. It only
// selects colors and borders; widget logic never reads it.
type Appearance int

const (
	AppearanceBase Appearance = iota
	AppearanceButton
	AppearanceButtonHover
	AppearanceButtonClicked
	AppearanceToggleOn
	AppearanceToggleOnHover
	AppearanceToggleOnClicked
	AppearanceToggleOff
	AppearanceToggleOffHover
	AppearanceToggleOffClicked
	AppearanceSliderRail
	AppearanceSliderHandle
	AppearanceSliderHandleHover
	AppearanceSliderHandleClicked
	AppearanceTextField
	AppearanceTextFieldHover
	AppearanceTextFieldArmed
	AppearancePanel
)

func (a Appearance) String() string {
	switch a {
	case AppearanceBase:
		return "base"
	case AppearanceButton:
		return "button"
	case AppearanceButtonHover:
		return "button_hover"
	case AppearanceButtonClicked:
		return "button_clicked"
	case AppearanceToggleOn:
		return "toggle_on"
	case AppearanceToggleOnHover:
		return "toggle_on_hover"
	case AppearanceToggleOnClicked:
		return "toggle_on_clicked"
	case AppearanceToggleOff:
		return "toggle_off"
	case AppearanceToggleOffHover:
		return "toggle_off_hover"
	case AppearanceToggleOffClicked:
		return "toggle_off_clicked"
	case AppearanceSliderRail:
		return "slider_rail"
	case AppearanceSliderHandle:
		return "slider_handle"
	case AppearanceSliderHandleHover:
		return "slider_handle_hover"
	case AppearanceSliderHandleClicked:
		return "slider_handle_clicked"
	case AppearanceTextField:
		return "text_field"
	case AppearanceTextFieldHover:
		return "text_field_hover"
	case AppearanceTextFieldArmed:
		return "text_field_armed"
	case AppearancePanel:
		return "panel"
	default:
		return "unknown"
	}
}

// AppearanceConfig is how one appearance token is drawn.
type AppearanceConfig struct {
	Fill        Color
	Border      Color
	BorderWidth float32 // Pixels; zero draws no border
	Text        Color
	Sprite      *Rect // Sprite sheet region stretched over the widget instead of Fill
}

// Theme maps appearance tokens to their configs.
type Theme struct {
	configs    map[Appearance]AppearanceConfig
	Background Color
	TextSize   float32 // Default label height, percent of screen height
}

func DefaultTheme() *Theme {
	text := HexColor(0xF0F0F0)
	dark := HexColor(0x20232A)
	mid := HexColor(0x3A3F4B)
	light := HexColor(0x5A6273)
	accent := HexColor(0x4F8EF7)
	accentDark := HexColor(0x2F5FB3)

	frame := func(fill, border Color) AppearanceConfig {
		return AppearanceConfig{Fill: fill, Border: border, BorderWidth: 2, Text: text}
	}

	return &Theme{
		Background: HexColor(0x15171C),
		TextSize:   3,
		configs: map[Appearance]AppearanceConfig{
			AppearanceBase:                frame(mid, light),
			AppearanceButton:              frame(mid, light),
			AppearanceButtonHover:         frame(light, accent),
			AppearanceButtonClicked:       frame(accentDark, accent),
			AppearanceToggleOn:            frame(accentDark, light),
			AppearanceToggleOnHover:       frame(accent, text),
			AppearanceToggleOnClicked:     frame(accentDark, text),
			AppearanceToggleOff:           frame(dark, light),
			AppearanceToggleOffHover:      frame(mid, accent),
			AppearanceToggleOffClicked:    frame(dark, accent),
			AppearanceSliderRail:          frame(dark, mid),
			AppearanceSliderHandle:        frame(light, light),
			AppearanceSliderHandleHover:   frame(accent, text),
			AppearanceSliderHandleClicked: frame(accentDark, text),
			AppearanceTextField:           frame(dark, mid),
			AppearanceTextFieldHover:      frame(dark, accent),
			AppearanceTextFieldArmed:      frame(dark, text),
			AppearancePanel:               frame(HexColor(0x262A33), mid),
		},
	}
}

// AppearanceConfig returns the config for a, falling back to the base config.
func (t *Theme) AppearanceConfig(a Appearance) AppearanceConfig {
	if cfg, ok := t.configs[a]; ok {
		return cfg
	}
	return t.configs[AppearanceBase]
}

func (t *Theme) SetAppearanceConfig(a Appearance, cfg AppearanceConfig) {
	t.configs[a] = cfg
}
