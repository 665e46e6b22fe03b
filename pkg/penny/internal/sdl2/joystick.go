package sdl2

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
	"github.com/veandco/go-sdl2/sdl"
)

// Joysticks tracks open SDL joysticks and serves them to the gamepad layer
// as an input.Device. Device ids are the lowest free slot at connect time.
type Joysticks struct {
	mu         sync.Mutex
	slots      map[int]*sdl.Joystick
	byInstance map[sdl.JoystickID]int
	families   map[int]input.Family
	triggers   map[int]*triggerState
	log        *slog.Logger
}

func NewJoysticks(log *slog.Logger) *Joysticks {
	return &Joysticks{
		slots:      map[int]*sdl.Joystick{},
		byInstance: map[sdl.JoystickID]int{},
		families:   map[int]input.Family{},
		triggers:   map[int]*triggerState{},
		log:        log,
	}
}

// SDL joystick axes follow the XInput order on every backend: both sticks,
// then each trigger on its own axis resting at the negative end.
const (
	sdlAxisLeftTrigger  = 2
	sdlAxisRightTrigger = 5
)

var sdlSticks = map[int]constants.GamepadAxis{
	0: constants.GamepadAxisLeftStickX,
	1: constants.GamepadAxisLeftStickY,
	3: constants.GamepadAxisRightStickX,
	4: constants.GamepadAxisRightStickY,
}

// triggerState holds the last position of each trigger in [0, 100].
type triggerState struct {
	left, right float32
}

func (t triggerState) combined() float32 {
	return t.left - t.right
}

// normalizeTrigger maps a trigger axis from rest to full pull onto [0, 100].
func normalizeTrigger(v int16) float32 {
	return (normalizeAxis(v) + constants.AxisMax) / 2
}

// translateAxis reports an SDL axis motion in the raw layout the family's
// tables expect. The triggers are folded into one combined axis, left
// positive.
func translateAxis(slot int, f input.Family, t *triggerState, axis int, value int16) []input.Event {
	switch axis {
	case sdlAxisLeftTrigger:
		t.left = normalizeTrigger(value)
	case sdlAxisRightTrigger:
		t.right = normalizeTrigger(value)
	default:
		logical, ok := sdlSticks[axis]
		if !ok {
			return nil
		}
		raw, ok := input.RawAxis(f, logical)
		if !ok {
			return nil
		}
		return []input.Event{input.JoystickAxisEvent{Device: slot, Axis: raw, Position: normalizeAxis(value)}}
	}
	raw, ok := input.RawAxis(f, constants.GamepadAxisTriggers)
	if !ok {
		return nil
	}
	return []input.Event{input.JoystickAxisEvent{Device: slot, Axis: raw, Position: t.combined()}}
}

// axisEvent translates an axis motion from the joystick in slot.
func (j *Joysticks) axisEvent(slot, axis int, value int16) []input.Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	t, ok := j.triggers[slot]
	if !ok {
		return nil
	}
	return translateAxis(slot, j.families[slot], t, axis, value)
}

// open opens the joystick at SDL device index and returns its slot.
func (j *Joysticks) open(index int) (int, bool) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		j.log.Error("Failed to open joystick", "index", index, "error", sdl.GetError())
		return 0, false
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	instance := joy.InstanceID()
	if slot, ok := j.byInstance[instance]; ok {
		joy.Close() // drop the extra reference
		return slot, false
	}

	slot := -1
	for id := 0; id < constants.MaxGamepads; id++ {
		if _, used := j.slots[id]; !used {
			slot = id
			break
		}
	}
	if slot < 0 {
		j.log.Warn("Too many joysticks, ignoring", "name", joy.Name(), "max", constants.MaxGamepads)
		joy.Close()
		return 0, false
	}

	j.slots[slot] = joy
	j.byInstance[instance] = slot
	j.families[slot] = input.FamilyOf(input.Identity{
		VendorID:  uint16(joy.Vendor()),
		ProductID: uint16(joy.Product()),
	})
	j.triggers[slot] = &triggerState{}
	j.log.Debug("Joystick opened",
		"slot", slot,
		"name", joy.Name(),
		"buttons", joy.NumButtons(),
		"axes", joy.NumAxes(),
		"hats", joy.NumHats(),
	)
	return slot, true
}

// close releases the joystick with the given instance id.
func (j *Joysticks) close(instance sdl.JoystickID) (int, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	slot, ok := j.byInstance[instance]
	if !ok {
		return 0, false
	}
	j.slots[slot].Close()
	delete(j.slots, slot)
	delete(j.byInstance, instance)
	delete(j.families, slot)
	delete(j.triggers, slot)
	return slot, true
}

// slot resolves an SDL instance id to a device id.
func (j *Joysticks) slot(instance sdl.JoystickID) (int, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	slot, ok := j.byInstance[instance]
	return slot, ok
}

func (j *Joysticks) get(id int) *sdl.Joystick {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.slots[id]
}

func (j *Joysticks) Connected(id int) bool {
	return j.get(id) != nil
}

func (j *Joysticks) Identify(id int) input.Identity {
	joy := j.get(id)
	if joy == nil {
		return input.Identity{}
	}
	return input.Identity{
		Name:      joy.Name(),
		VendorID:  uint16(joy.Vendor()),
		ProductID: uint16(joy.Product()),
	}
}

func (j *Joysticks) ButtonPressed(id, button int) bool {
	joy := j.get(id)
	return joy != nil && joy.Button(button) == sdl.PRESSED
}

// Axis polls an axis by its raw index in the family's layout.
func (j *Joysticks) Axis(id, axis int) float32 {
	j.mu.Lock()
	joy, f := j.slots[id], j.families[id]
	j.mu.Unlock()
	if joy == nil {
		return 0
	}

	switch logical := input.LogicalAxis(f, axis); logical {
	case constants.GamepadAxisTriggers:
		t := triggerState{
			left:  normalizeTrigger(joy.Axis(sdlAxisLeftTrigger)),
			right: normalizeTrigger(joy.Axis(sdlAxisRightTrigger)),
		}
		return t.combined()
	case constants.GamepadAxisDPadX, constants.GamepadAxisDPadY:
		hat := translateHat(id, joy.Hat(0))
		if logical == constants.GamepadAxisDPadX {
			return hat[0].(input.JoystickAxisEvent).Position
		}
		return hat[1].(input.JoystickAxisEvent).Position
	default:
		for native, l := range sdlSticks {
			if l == logical {
				return normalizeAxis(joy.Axis(native))
			}
		}
		return 0
	}
}

func (j *Joysticks) Rumble(id int, strength uint16, duration time.Duration) error {
	joy := j.get(id)
	if joy == nil {
		return fmt.Errorf("rumble: joystick %d not connected", id)
	}
	if err := joy.Rumble(strength, strength, uint32(duration.Milliseconds())); err != nil {
		return fmt.Errorf("%w: %v", input.ErrRumbleUnsupported, err)
	}
	return nil
}

// CloseAll releases every open joystick.
func (j *Joysticks) CloseAll() {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, joy := range j.slots {
		joy.Close()
	}
	j.slots = map[int]*sdl.Joystick{}
	j.byInstance = map[sdl.JoystickID]int{}
	j.families = map[int]input.Family{}
	j.triggers = map[int]*triggerState{}
}

// normalizeAxis maps an SDL axis value to [-100, 100].
func normalizeAxis(v int16) float32 {
	return max(-constants.AxisMax, min(float32(v)/32767*constants.AxisMax, constants.AxisMax))
}
