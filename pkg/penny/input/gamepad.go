package input

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/internal/logging"
	"go.uber.org/atomic"
)

// Gamepad interprets the raw events of one active controller. It keeps the
// last trigger and D-pad samples so that axis-reported inputs produce exactly
// one press and one release per physical transition.
type Gamepad struct {
	device Device
	log    *slog.Logger

	id       int
	selected bool
	identity Identity
	family   Family

	stickDeadZone    float32
	triggerDeadZone  float32
	triggerThreshold float32

	lastLeftTrigger  float32
	lastRightTrigger float32
	lastDPadX        float32
	lastDPadY        float32
	pressed          [constants.SynthesizedButtonCount]bool

	listeners []GamepadListener

	vibrating *atomic.Bool
	sleep     func(time.Duration)
}

type GamepadOption func(*Gamepad)

// WithDeadZones sets the stick and trigger dead zones on the [0, 100] scale.
func WithDeadZones(stick, trigger float32) GamepadOption {
	return func(g *Gamepad) {
		g.stickDeadZone = stick
		g.triggerDeadZone = trigger
	}
}

// WithTriggerThreshold sets the deadzoned magnitude a trigger must exceed to
// count as pressed.
func WithTriggerThreshold(threshold float32) GamepadOption {
	return func(g *Gamepad) {
		g.triggerThreshold = threshold
	}
}

func WithGamepadLogger(log *slog.Logger) GamepadOption {
	return func(g *Gamepad) {
		g.log = log
	}
}

func NewGamepad(device Device, opts ...GamepadOption) *Gamepad {
	g := &Gamepad{
		device:           device,
		log:              logging.Discard(),
		stickDeadZone:    constants.DefaultStickDeadZone,
		triggerDeadZone:  constants.DefaultTriggerDeadZone,
		triggerThreshold: constants.DefaultTriggerPressThreshold,
		vibrating:        atomic.NewBool(false),
		sleep:            time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddListener registers l for button edges and connection changes.
// Listeners are called in registration order.
func (g *Gamepad) AddListener(l GamepadListener) {
	g.listeners = append(g.listeners, l)
}

// SetActiveDevice selects which device's raw events are interpreted.
func (g *Gamepad) SetActiveDevice(id int) {
	g.id = id
	g.selected = true
	g.identity = g.device.Identify(id)
	g.family = FamilyOf(g.identity)
	g.resetSynthesized()

	g.log.Info("Gamepad selected",
		"device", id,
		"name", g.identity.Name,
		"vendor_id", fmt.Sprintf("0x%04x", g.identity.VendorID),
		"product_id", fmt.Sprintf("0x%04x", g.identity.ProductID),
		"family", g.family.String(),
	)
}

// SelectLowestConnected selects the lowest-index connected device. Returns
// false when nothing is connected.
func (g *Gamepad) SelectLowestConnected() bool {
	for id := 0; id < constants.MaxGamepads; id++ {
		if g.device.Connected(id) {
			g.SetActiveDevice(id)
			return true
		}
	}
	return false
}

// ActiveDevice returns the selected device id.
func (g *Gamepad) ActiveDevice() (int, bool) {
	return g.id, g.selected
}

func (g *Gamepad) Identity() Identity {
	return g.identity
}

func (g *Gamepad) Family() Family {
	return g.family
}

func (g *Gamepad) IsConnected() bool {
	return g.selected && g.device.Connected(g.id)
}

// TranslateButton applies the active family's button remap.
func (g *Gamepad) TranslateButton(b constants.GamepadButton) constants.GamepadButton {
	return TranslateButton(g.family, b)
}

// IsButtonPressed polls ordinary buttons from the device and returns the
// last synthesized edge state for the triggers and the D-pad.
func (g *Gamepad) IsButtonPressed(b constants.GamepadButton) bool {
	if !g.selected {
		return false
	}
	if b.IsSynthesized() {
		return g.pressed[b-constants.GamepadButtonLeftTrigger]
	}
	raw := rawButton(g.family, b)
	if raw < 0 {
		return false
	}
	return g.device.ButtonPressed(g.id, raw)
}

// LeftStick returns the deadzoned left stick position.
func (g *Gamepad) LeftStick() (x, y float32) {
	return g.stickAxis(constants.GamepadAxisLeftStickX), g.stickAxis(constants.GamepadAxisLeftStickY)
}

// RightStick returns the deadzoned right stick position.
func (g *Gamepad) RightStick() (x, y float32) {
	return g.stickAxis(constants.GamepadAxisRightStickX), g.stickAxis(constants.GamepadAxisRightStickY)
}

func (g *Gamepad) stickAxis(a constants.GamepadAxis) float32 {
	if !g.selected {
		return 0
	}
	raw := rawAxis(g.family, a)
	if raw < 0 {
		return 0
	}
	return removeDeadZone(g.device.Axis(g.id, raw), g.stickDeadZone)
}

// Vibrate starts a rumble of the given strength for d and returns at once.
// A request made while another is running is dropped, as is any request on
// the DualSense family. Reports whether the request was accepted.
func (g *Gamepad) Vibrate(strength int, d time.Duration) bool {
	if !g.selected || g.family == FamilyDualSense {
		return false
	}
	if !g.vibrating.CompareAndSwap(false, true) {
		return false
	}

	strength = max(0, min(strength, constants.MaxVibration))
	device, id := g.device, g.id

	go func() {
		defer g.vibrating.Store(false)

		if err := device.Rumble(id, uint16(strength), d); err != nil {
			g.log.Warn("Failed to start vibration", "device", id, "error", err)
			return
		}
		g.sleep(d)
		if err := device.Rumble(id, 0, 0); err != nil {
			g.log.Warn("Failed to stop vibration", "device", id, "error", err)
		}
	}()

	return true
}

func (g *Gamepad) IsVibrating() bool {
	return g.vibrating.Load()
}

func (g *Gamepad) connected(id int) {
	g.log.Info("Gamepad connected", "device", id)
	if !g.selected {
		g.SelectLowestConnected()
	}
	for _, l := range g.listeners {
		l.GamepadConnected(id)
	}
}

func (g *Gamepad) disconnected(id int) {
	g.log.Info("Gamepad disconnected", "device", id)
	if g.selected && id == g.id {
		g.selected = false
		g.identity = Identity{}
		g.family = FamilyDefault
		g.resetSynthesized()
	}
	for _, l := range g.listeners {
		l.GamepadDisconnected(id)
	}
}

func (g *Gamepad) button(device, raw int, pressed bool) {
	if !g.selected || device != g.id || raw < 0 || raw >= rawButtonCount {
		return
	}
	b := TranslateButton(g.family, constants.GamepadButton(raw))
	if pressed {
		g.press(b)
	} else {
		g.release(b)
	}
}

func (g *Gamepad) axis(device, raw int, position float32) {
	if !g.selected || device != g.id {
		return
	}
	switch LogicalAxis(g.family, raw) {
	case constants.GamepadAxisTriggers:
		g.updateTriggers(position)
	case constants.GamepadAxisDPadX:
		g.lastDPadX = g.updateDPad(position, g.lastDPadX,
			constants.GamepadButtonDPadLeft, constants.GamepadButtonDPadRight)
	case constants.GamepadAxisDPadY:
		g.lastDPadY = g.updateDPad(position, g.lastDPadY,
			constants.GamepadButtonDPadDown, constants.GamepadButtonDPadUp)
	}
}

// updateTriggers splits the shared trigger axis by sign: positive samples
// belong to the left trigger, negative samples to the right one.
func (g *Gamepad) updateTriggers(position float32) {
	var left, right float32
	magnitude := abs(position)
	if magnitude > g.triggerDeadZone {
		if position > 0 {
			left = magnitude
		} else {
			right = magnitude
		}
	}

	g.lastLeftTrigger = g.updateTrigger(left, g.lastLeftTrigger, constants.GamepadButtonLeftTrigger)
	g.lastRightTrigger = g.updateTrigger(right, g.lastRightTrigger, constants.GamepadButtonRightTrigger)
}

func (g *Gamepad) updateTrigger(magnitude, last float32, b constants.GamepadButton) float32 {
	down := g.pressed[b-constants.GamepadButtonLeftTrigger]
	switch {
	case magnitude > g.triggerThreshold && last <= g.triggerThreshold && !down:
		g.press(b)
	case magnitude == 0 && down:
		g.release(b)
	}
	return magnitude
}

// updateDPad quantises a D-pad axis sample to -100, 0 or 100 and fires the
// edges between the previous and the new value. Returns the value to store.
func (g *Gamepad) updateDPad(position, last float32, negative, positive constants.GamepadButton) float32 {
	value := quantize(position)
	if value == last {
		return last
	}

	switch last {
	case -constants.AxisMax:
		g.release(negative)
	case constants.AxisMax:
		g.release(positive)
	}

	switch value {
	case -constants.AxisMax:
		g.press(negative)
	case constants.AxisMax:
		g.press(positive)
	}

	return value
}

func (g *Gamepad) press(b constants.GamepadButton) {
	if b.IsSynthesized() {
		g.pressed[b-constants.GamepadButtonLeftTrigger] = true
	}
	for _, l := range g.listeners {
		l.GamepadButtonPressed(b)
	}
}

func (g *Gamepad) release(b constants.GamepadButton) {
	if b.IsSynthesized() {
		g.pressed[b-constants.GamepadButtonLeftTrigger] = false
	}
	for _, l := range g.listeners {
		l.GamepadButtonReleased(b)
	}
}

func (g *Gamepad) resetSynthesized() {
	g.pressed = [constants.SynthesizedButtonCount]bool{}
	g.lastLeftTrigger, g.lastRightTrigger = 0, 0
	g.lastDPadX, g.lastDPadY = 0, 0
}

func removeDeadZone(value, deadZone float32) float32 {
	if abs(value) > deadZone {
		return value
	}
	return 0
}

func quantize(position float32) float32 {
	switch {
	case position <= -constants.AxisMax/2:
		return -constants.AxisMax
	case position >= constants.AxisMax/2:
		return constants.AxisMax
	default:
		return 0
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
