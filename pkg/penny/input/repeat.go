package input

import (
	"slices"
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
)

// DirectionalRepeat tracks held D-pad directions and reports when a held
// direction should repeat. It is advanced by frame delta rather than wall
// clock so that a paused or stepped frame loop repeats deterministically.
type DirectionalRepeat struct {
	// held lists the held directions, oldest first.
	held           []constants.GamepadButton
	elapsed        time.Duration
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalRepeat creates a DirectionalRepeat with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalRepeat() *DirectionalRepeat {
	return NewDirectionalRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalRepeatWithTiming creates a DirectionalRepeat with custom timing.
func NewDirectionalRepeatWithTiming(delay, interval time.Duration) *DirectionalRepeat {
	return &DirectionalRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld updates the held state for a D-pad button.
// Returns true if the button was a directional button.
func (d *DirectionalRepeat) SetHeld(button constants.GamepadButton, held bool) bool {
	switch button {
	case constants.GamepadButtonDPadUp, constants.GamepadButtonDPadDown,
		constants.GamepadButtonDPadLeft, constants.GamepadButtonDPadRight:
	default:
		return false
	}
	d.held = slices.DeleteFunc(d.held, func(b constants.GamepadButton) bool { return b == button })
	if held {
		d.held = append(d.held, button)
	}
	d.elapsed = 0
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalRepeat) IsHeld() bool {
	return len(d.held) > 0
}

// HeldDirection returns the most recently pressed direction that is still
// held.
func (d *DirectionalRepeat) HeldDirection() (constants.GamepadButton, bool) {
	if len(d.held) == 0 {
		return 0, false
	}
	return d.held[len(d.held)-1], true
}

// Update advances the repeat timer by dt and returns the direction to repeat,
// if any. The first repeat occurs after the delay, later ones after the
// interval.
func (d *DirectionalRepeat) Update(dt time.Duration) (constants.GamepadButton, bool) {
	if !d.IsHeld() {
		d.elapsed = 0
		d.hasRepeated = false
		return 0, false
	}

	d.elapsed += dt

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.elapsed >= threshold {
		d.elapsed = 0
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return 0, false
}

// Reset clears all held directions and timing state.
func (d *DirectionalRepeat) Reset() {
	d.held = d.held[:0]
	d.hasRepeated = false
	d.elapsed = 0
}
