//go:build linux

package input

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/pennyengine/penny/pkg/penny/internal/logging"
)

// ErrRumbleUnsupported is returned by backends without force feedback.
var ErrRumbleUnsupported = errors.New("rumble not supported by device")

// evdevDeviceID is the id an EvdevSource reports for its single device.
const evdevDeviceID = 0

var evdevButtons = map[evdev.EvCode]int{
	evdev.BTN_SOUTH:  0,
	evdev.BTN_EAST:   1,
	evdev.BTN_NORTH:  2,
	evdev.BTN_WEST:   3,
	evdev.BTN_TL:     4,
	evdev.BTN_TR:     5,
	evdev.BTN_SELECT: 6,
	evdev.BTN_START:  7,
	evdev.BTN_THUMBL: 8,
	evdev.BTN_THUMBR: 9,
	evdev.BTN_TL2:    10,
	evdev.BTN_TR2:    11,
}

// Handheld D-pads often arrive as keys; they are folded into the hat axes.
var evdevDPad = map[evdev.EvCode]struct {
	axis  int
	value float32
}{
	evdev.BTN_DPAD_UP:    {RawAxisDPadY, 100},
	evdev.BTN_DPAD_DOWN:  {RawAxisDPadY, -100},
	evdev.BTN_DPAD_LEFT:  {RawAxisDPadX, -100},
	evdev.BTN_DPAD_RIGHT: {RawAxisDPadX, 100},
}

var evdevSticks = map[evdev.EvCode]int{
	evdev.ABS_X:  0,
	evdev.ABS_Y:  1,
	evdev.ABS_RX: 4,
	evdev.ABS_RY: 5,
}

// EvdevSource reads one Linux input device directly. It serves both as an
// event source, drained once per frame with Poll, and as the Device the
// Gamepad polls.
type EvdevSource struct {
	dev      *evdev.InputDevice
	identity Identity
	absInfo  map[evdev.EvCode]evdev.AbsInfo
	log      *slog.Logger

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu       sync.Mutex
	buttons  map[int]bool
	axes     map[int]float32
	triggerL float32
	triggerR float32
	closed   bool
	lost     bool
}

// OpenEvdev opens the device at path and starts reading it.
func OpenEvdev(path string, log *slog.Logger) (*EvdevSource, error) {
	if log == nil {
		log = logging.Discard()
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	s := newEvdevSource(log)
	s.dev = dev

	name, err := dev.Name()
	if err != nil {
		log.Warn("Could not read evdev device name", "path", path, "error", err)
	}
	s.identity.Name = name

	if id, err := dev.InputID(); err == nil {
		s.identity.VendorID = id.Vendor
		s.identity.ProductID = id.Product
	} else {
		log.Warn("Could not read evdev device id", "path", path, "error", err)
	}

	if infos, err := dev.AbsInfos(); err == nil {
		s.absInfo = infos
	} else {
		log.Warn("Could not read evdev axis ranges; assuming defaults", "path", path, "error", err)
	}

	log.Info("Opened evdev gamepad", "path", path, "device", s.identity.String())

	s.events <- JoystickConnectedEvent{Device: evdevDeviceID}

	s.wg.Add(1)
	go s.read()

	return s, nil
}

func newEvdevSource(log *slog.Logger) *EvdevSource {
	return &EvdevSource{
		log:     log,
		absInfo: map[evdev.EvCode]evdev.AbsInfo{},
		events:  make(chan Event, 256),
		done:    make(chan struct{}),
		buttons: map[int]bool{},
		axes:    map[int]float32{},
	}
}

func (s *EvdevSource) read() {
	defer s.wg.Done()

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			select {
			case <-s.done:
			default:
				s.lose(err)
			}
			return
		}
		for _, out := range s.translate(ev) {
			s.push(out)
		}
	}
}

// lose marks the device gone after a read failure and reports the
// disconnect. Held state is dropped so nothing stays pressed.
func (s *EvdevSource) lose(err error) {
	s.log.Error("Evdev read failed", "error", err)
	s.mu.Lock()
	s.lost = true
	clear(s.buttons)
	clear(s.axes)
	s.triggerL, s.triggerR = 0, 0
	s.mu.Unlock()
	s.push(JoystickDisconnectedEvent{Device: evdevDeviceID})
}

func (s *EvdevSource) push(ev Event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// Poll hands every queued event to dispatch without blocking.
func (s *EvdevSource) Poll(dispatch func(Event)) {
	for {
		select {
		case ev := <-s.events:
			dispatch(ev)
		default:
			return
		}
	}
}

// translate converts one evdev event into router events and records the
// state the Device methods report.
func (s *EvdevSource) translate(ev *evdev.InputEvent) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Value == 2 {
			return nil // autorepeat
		}
		pressed := ev.Value != 0
		if raw, ok := evdevButtons[ev.Code]; ok {
			s.buttons[raw] = pressed
			return []Event{JoystickButtonEvent{Device: evdevDeviceID, Button: raw, Pressed: pressed}}
		}
		if d, ok := evdevDPad[ev.Code]; ok {
			var value float32
			if pressed {
				value = d.value
			}
			s.axes[d.axis] = value
			return []Event{JoystickAxisEvent{Device: evdevDeviceID, Axis: d.axis, Position: value}}
		}
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_HAT0X:
			return s.setAxis(RawAxisDPadX, float32(ev.Value)*100)
		case evdev.ABS_HAT0Y:
			// evdev reports up as negative
			return s.setAxis(RawAxisDPadY, float32(-ev.Value)*100)
		case evdev.ABS_Z:
			s.triggerL = s.scaleTrigger(ev.Code, ev.Value)
			return s.setAxis(RawAxisTriggers, s.triggerL-s.triggerR)
		case evdev.ABS_RZ:
			s.triggerR = s.scaleTrigger(ev.Code, ev.Value)
			return s.setAxis(RawAxisTriggers, s.triggerL-s.triggerR)
		}
		if raw, ok := evdevSticks[ev.Code]; ok {
			return s.setAxis(raw, s.scaleStick(ev.Code, ev.Value))
		}
	}
	return nil
}

func (s *EvdevSource) setAxis(raw int, position float32) []Event {
	s.axes[raw] = position
	return []Event{JoystickAxisEvent{Device: evdevDeviceID, Axis: raw, Position: position}}
}

func (s *EvdevSource) scaleStick(code evdev.EvCode, value int32) float32 {
	lo, hi := int32(-32768), int32(32767)
	if info, ok := s.absInfo[code]; ok && info.Maximum > info.Minimum {
		lo, hi = info.Minimum, info.Maximum
	}
	center := (float32(hi) + float32(lo)) / 2
	half := (float32(hi) - float32(lo)) / 2
	return clampAxis((float32(value) - center) / half * 100)
}

func (s *EvdevSource) scaleTrigger(code evdev.EvCode, value int32) float32 {
	lo, hi := int32(0), int32(255)
	if info, ok := s.absInfo[code]; ok && info.Maximum > info.Minimum {
		lo, hi = info.Minimum, info.Maximum
	}
	return clampAxis((float32(value) - float32(lo)) / (float32(hi) - float32(lo)) * 100)
}

func clampAxis(v float32) float32 {
	return max(-100, min(v, 100))
}

func (s *EvdevSource) Connected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id == evdevDeviceID && !s.closed && !s.lost
}

func (s *EvdevSource) Identify(int) Identity {
	return s.identity
}

func (s *EvdevSource) ButtonPressed(id, button int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id == evdevDeviceID && s.buttons[button]
}

func (s *EvdevSource) Axis(id, axis int) float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != evdevDeviceID {
		return 0
	}
	return s.axes[axis]
}

func (s *EvdevSource) Rumble(int, uint16, time.Duration) error {
	return ErrRumbleUnsupported
}

// Close stops the reader and releases the device.
func (s *EvdevSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	var err error
	if s.dev != nil {
		err = s.dev.Close()
	}
	s.wg.Wait()
	return err
}
