package input

import "github.com/pennyengine/penny/pkg/penny/constants"

// Family selects the raw layout tables for a controller.
type Family int

const (
	FamilyDefault Family = iota
	FamilyDualSense
)

func (f Family) String() string {
	switch f {
	case FamilyDualSense:
		return "dualsense"
	default:
		return "default"
	}
}

// FamilyOf picks the layout family from a controller's vendor and product ids.
func FamilyOf(id Identity) Family {
	if id.VendorID == constants.SonyVendorID && id.ProductID == constants.DualSenseProductID {
		return FamilyDualSense
	}
	return FamilyDefault
}

// rawButtonCount bounds the raw button indices a device may report. The
// D-pad never arrives as a raw button.
const rawButtonCount = int(constants.GamepadButtonDPadUp)

var dualSenseButtons = map[constants.GamepadButton]constants.GamepadButton{
	constants.GamepadButtonSelect:       constants.GamepadButtonLeftTrigger,
	constants.GamepadButtonStart:        constants.GamepadButtonRightTrigger,
	constants.GamepadButtonLeftStick:    constants.GamepadButtonSelect,
	constants.GamepadButtonRightStick:   constants.GamepadButtonStart,
	constants.GamepadButtonA:            constants.GamepadButtonX,
	constants.GamepadButtonB:            constants.GamepadButtonA,
	constants.GamepadButtonX:            constants.GamepadButtonB,
	constants.GamepadButtonLeftTrigger:  constants.GamepadButtonLeftStick,
	constants.GamepadButtonRightTrigger: constants.GamepadButtonRightStick,
}

// TranslateButton maps a button as numbered by the default layout to the
// logical button it means on the given family.
func TranslateButton(f Family, b constants.GamepadButton) constants.GamepadButton {
	if f != FamilyDualSense {
		return b
	}
	if t, ok := dualSenseButtons[b]; ok {
		return t
	}
	return b
}

// rawButton is the inverse of TranslateButton restricted to raw indices. It
// returns -1 for buttons the family never reports as a raw button.
func rawButton(f Family, b constants.GamepadButton) int {
	for raw := 0; raw < rawButtonCount; raw++ {
		if TranslateButton(f, constants.GamepadButton(raw)) == b {
			return raw
		}
	}
	return -1
}

var defaultAxes = map[int]constants.GamepadAxis{
	0: constants.GamepadAxisLeftStickX,
	1: constants.GamepadAxisLeftStickY,
	2: constants.GamepadAxisTriggers,
	4: constants.GamepadAxisRightStickX,
	5: constants.GamepadAxisRightStickY,
	6: constants.GamepadAxisDPadX,
	7: constants.GamepadAxisDPadY,
}

// The DualSense reports its right stick on the axes the default layout uses
// for the triggers, and its triggers as buttons.
var dualSenseAxes = map[int]constants.GamepadAxis{
	0: constants.GamepadAxisLeftStickX,
	1: constants.GamepadAxisLeftStickY,
	2: constants.GamepadAxisRightStickX,
	3: constants.GamepadAxisRightStickY,
	6: constants.GamepadAxisDPadX,
	7: constants.GamepadAxisDPadY,
}

// Raw axis indices used by backends for D-pad hats and combined triggers.
const (
	RawAxisTriggers = 2
	RawAxisDPadX    = 6
	RawAxisDPadY    = 7
)

func axisTable(f Family) map[int]constants.GamepadAxis {
	if f == FamilyDualSense {
		return dualSenseAxes
	}
	return defaultAxes
}

// LogicalAxis maps a raw axis index to its logical axis for the family.
func LogicalAxis(f Family, raw int) constants.GamepadAxis {
	if a, ok := axisTable(f)[raw]; ok {
		return a
	}
	return constants.GamepadAxisUnknown
}

// RawAxis is the inverse of LogicalAxis. Backends whose native layout
// differs use it to report axes where the family's table expects them.
func RawAxis(f Family, a constants.GamepadAxis) (int, bool) {
	raw := rawAxis(f, a)
	return raw, raw >= 0
}

func rawAxis(f Family, a constants.GamepadAxis) int {
	for raw, logical := range axisTable(f) {
		if logical == a {
			return raw
		}
	}
	return -1
}
