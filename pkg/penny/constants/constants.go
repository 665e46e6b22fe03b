// Package constants defines shared constants, types, and configuration values
// used throughout the penny UI framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the engine.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "PENNY_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// GamepadButton is a logical controller button. Raw device indices are mapped
// onto these values by the input package; the first ten match the raw layout
// of the default controller family.
type GamepadButton int

const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLB
	GamepadButtonRB
	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight

	GamepadButtonCount
)

// SynthesizedButtonCount is the number of buttons whose state is derived
// from axis samples (the two triggers and the four D-pad directions).
const SynthesizedButtonCount = int(GamepadButtonCount - GamepadButtonLeftTrigger)

// IsSynthesized reports whether the button has no native discrete state and
// is tracked through axis edge synthesis.
func (b GamepadButton) IsSynthesized() bool {
	return b >= GamepadButtonLeftTrigger && b < GamepadButtonCount
}

// IsDirectional reports whether the button is one of the four D-pad directions.
func (b GamepadButton) IsDirectional() bool {
	return b >= GamepadButtonDPadUp && b <= GamepadButtonDPadRight
}

func (b GamepadButton) GetName() string {
	switch b {
	case GamepadButtonA:
		return "A"
	case GamepadButtonB:
		return "B"
	case GamepadButtonX:
		return "X"
	case GamepadButtonY:
		return "Y"
	case GamepadButtonLB:
		return "LB"
	case GamepadButtonRB:
		return "RB"
	case GamepadButtonSelect:
		return "Select"
	case GamepadButtonStart:
		return "Start"
	case GamepadButtonLeftStick:
		return "LeftStick"
	case GamepadButtonRightStick:
		return "RightStick"
	case GamepadButtonLeftTrigger:
		return "LeftTrigger"
	case GamepadButtonRightTrigger:
		return "RightTrigger"
	case GamepadButtonDPadUp:
		return "DPadUp"
	case GamepadButtonDPadDown:
		return "DPadDown"
	case GamepadButtonDPadLeft:
		return "DPadLeft"
	case GamepadButtonDPadRight:
		return "DPadRight"
	default:
		return "Unknown"
	}
}

// GamepadAxis is a logical controller axis.
type GamepadAxis int

const (
	GamepadAxisLeftStickX GamepadAxis = iota
	GamepadAxisLeftStickY
	GamepadAxisTriggers // Left trigger positive, right trigger negative
	GamepadAxisRightStickX
	GamepadAxisRightStickY
	GamepadAxisDPadX // -100 left, 100 right
	GamepadAxisDPadY // 100 up, -100 down

	GamepadAxisUnknown GamepadAxis = -1
)

func (a GamepadAxis) GetName() string {
	switch a {
	case GamepadAxisLeftStickX:
		return "LeftStickX"
	case GamepadAxisLeftStickY:
		return "LeftStickY"
	case GamepadAxisTriggers:
		return "Triggers"
	case GamepadAxisRightStickX:
		return "RightStickX"
	case GamepadAxisRightStickY:
		return "RightStickY"
	case GamepadAxisDPadX:
		return "DPadX"
	case GamepadAxisDPadY:
		return "DPadY"
	default:
		return "Unknown"
	}
}

// AxisMax is the magnitude of a fully deflected axis after normalisation.
const AxisMax float32 = 100

// Controller identification.
const (
	SonyVendorID       = 0x054C
	DualSenseProductID = 0x0CE6
	MaxGamepads        = 8
	MaxVibration       = 65535
)

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and input constants.
const (
	DefaultStickDeadZone         float32 = 10
	DefaultTriggerDeadZone       float32 = 1
	DefaultTriggerPressThreshold float32 = 50

	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond

	DefaultVibrationStrength = MaxVibration / 2
)

// Default window and asset settings.
const (
	DefaultWindowTitle = "penny"
	DefaultFontSize    = 24
	DefaultLocale      = "en"
	DefaultLogLevel    = "info"
)
