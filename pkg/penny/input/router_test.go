package input

import (
	"reflect"
	"testing"

	"github.com/pennyengine/penny/pkg/penny/constants"
)

type fakeCursor struct {
	calls []bool
}

func (c *fakeCursor) SetCursorVisible(v bool) { c.calls = append(c.calls, v) }

type recordingKeyMouse struct {
	log []string
}

func (r *recordingKeyMouse) KeyPressed(k Key)    { r.log = append(r.log, "key+") }
func (r *recordingKeyMouse) KeyReleased(k Key)   { r.log = append(r.log, "key-") }
func (r *recordingKeyMouse) TextEntered(c rune)  { r.log = append(r.log, "text:"+string(c)) }
func (r *recordingKeyMouse) MouseMoved(x, y int) { r.log = append(r.log, "move") }
func (r *recordingKeyMouse) MouseWheelScrolled(dx, dy float32) {
	r.log = append(r.log, "wheel")
}

func (r *recordingKeyMouse) MouseButtonPressed(x, y int, b MouseButton) {
	r.log = append(r.log, "down")
}

func (r *recordingKeyMouse) MouseButtonReleased(x, y int, b MouseButton) {
	r.log = append(r.log, "up")
}

type keyOnly struct{ texts []rune }

func (k *keyOnly) KeyPressed(Key)     {}
func (k *keyOnly) KeyReleased(Key)    {}
func (k *keyOnly) TextEntered(c rune) { k.texts = append(k.texts, c) }

func newTestRouter() (*Router, *fakeDevice, *fakeCursor) {
	dev := newFakeDevice()
	cursor := &fakeCursor{}
	return NewRouter(NewGamepad(dev), NewMode(), cursor, nil), dev, cursor
}

func TestAddListenerResolvesCapabilities(t *testing.T) {
	r, _, _ := newTestRouter()

	tests := []struct {
		name     string
		listener any
		want     Capability
	}{
		{"key and mouse", &recordingKeyMouse{}, CapabilityKey | CapabilityMouse},
		{"key only", &keyOnly{}, CapabilityKey},
		{"gamepad only", &recordingListener{}, CapabilityGamepad},
		{"nothing", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.AddListener(tt.listener); got != tt.want {
				t.Errorf("AddListener() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestDispatchBroadcastsInRegistrationOrder(t *testing.T) {
	r, _, _ := newTestRouter()
	first, second := &keyOnly{}, &keyOnly{}
	r.AddListener(first)
	r.AddListener(second)

	r.Dispatch(TextEvent{Char: 'a'})
	r.Dispatch(TextEvent{Char: '\b'})

	want := []rune{'a', '\b'}
	if !reflect.DeepEqual(first.texts, want) || !reflect.DeepEqual(second.texts, want) {
		t.Errorf("texts = %q / %q, want %q for both", first.texts, second.texts, want)
	}
}

func TestDispatchPointerEvents(t *testing.T) {
	r, _, _ := newTestRouter()
	rec := &recordingKeyMouse{}
	r.AddListener(rec)

	r.Dispatch(KeyEvent{Key: KeyEnter, Pressed: true})
	r.Dispatch(MouseButtonEvent{X: 1, Y: 2, Button: MouseButtonLeft, Pressed: true})
	r.Dispatch(MouseMoveEvent{X: 3, Y: 4})
	r.Dispatch(MouseButtonEvent{X: 3, Y: 4, Button: MouseButtonLeft})
	r.Dispatch(MouseWheelEvent{DY: 1})
	r.Dispatch(KeyEvent{Key: KeyEnter})
	r.Dispatch(QuitEvent{})

	want := []string{"key+", "down", "move", "up", "wheel", "key-"}
	if !reflect.DeepEqual(rec.log, want) {
		t.Errorf("log = %v, want %v", rec.log, want)
	}
}

func TestInputModeFollowsTraffic(t *testing.T) {
	r, dev, cursor := newTestRouter()
	dev.connected[0] = true
	r.Dispatch(JoystickConnectedEvent{Device: 0})

	if !r.Mode().UsingPointer() {
		t.Fatal("router should start in pointer mode")
	}

	r.Dispatch(JoystickAxisEvent{Device: 0, Axis: 0, Position: 3})
	if !r.Mode().UsingPointer() {
		t.Error("stick noise inside the dead zone should not switch to gamepad mode")
	}

	r.Dispatch(JoystickButtonEvent{Device: 0, Button: 0, Pressed: true})
	if !r.Mode().UsingGamepad() {
		t.Error("button press should switch to gamepad mode")
	}

	r.Dispatch(JoystickButtonEvent{Device: 0, Button: 0})
	r.Dispatch(MouseMoveEvent{X: 10, Y: 10})
	if !r.Mode().UsingPointer() {
		t.Error("pointer move should switch back to pointer mode")
	}

	if want := []bool{false, true}; !reflect.DeepEqual(cursor.calls, want) {
		t.Errorf("cursor visibility calls = %v, want %v", cursor.calls, want)
	}
}

func TestFirstConnectSelectsLowestDevice(t *testing.T) {
	r, dev, _ := newTestRouter()
	rec := &recordingListener{}
	r.AddListener(rec)

	dev.connected[1] = true
	dev.connected[3] = true
	r.Dispatch(JoystickConnectedEvent{Device: 3})

	id, ok := r.Gamepad().ActiveDevice()
	if !ok || id != 1 {
		t.Fatalf("ActiveDevice() = (%d, %v), want (1, true)", id, ok)
	}

	dev.connected[0] = true
	r.Dispatch(JoystickConnectedEvent{Device: 0})
	if id, _ := r.Gamepad().ActiveDevice(); id != 1 {
		t.Errorf("a later connect must keep the selected device, got %d", id)
	}

	if want := []int{3, 0}; !reflect.DeepEqual(rec.connected, want) {
		t.Errorf("connected callbacks = %v, want %v", rec.connected, want)
	}
}

func TestDisconnectClearsActiveDevice(t *testing.T) {
	r, dev, _ := newTestRouter()
	rec := &recordingListener{}
	r.AddListener(rec)
	dev.connected[0] = true
	r.Dispatch(JoystickConnectedEvent{Device: 0})

	r.Dispatch(JoystickAxisEvent{Device: 0, Axis: RawAxisDPadX, Position: 100})
	delete(dev.connected, 0)
	r.Dispatch(JoystickDisconnectedEvent{Device: 0})

	if _, ok := r.Gamepad().ActiveDevice(); ok {
		t.Error("disconnecting the active device should clear the selection")
	}
	if r.Gamepad().IsButtonPressed(constants.GamepadButtonDPadRight) {
		t.Error("synthesized state should be cleared on disconnect")
	}
	if want := []int{0}; !reflect.DeepEqual(rec.disconnected, want) {
		t.Errorf("disconnected callbacks = %v, want %v", rec.disconnected, want)
	}
}

func TestRouterFeedsGamepadEdges(t *testing.T) {
	r, dev, _ := newTestRouter()
	rec := &recordingListener{}
	r.AddListener(rec)
	dev.connected[0] = true
	r.Dispatch(JoystickConnectedEvent{Device: 0})

	r.Dispatch(JoystickButtonEvent{Device: 0, Button: int(constants.GamepadButtonStart), Pressed: true})
	r.Dispatch(JoystickAxisEvent{Device: 0, Axis: RawAxisDPadY, Position: -100})
	r.Dispatch(JoystickButtonEvent{Device: 0, Button: 42, Pressed: true})

	want := []edge{
		{true, constants.GamepadButtonStart},
		{true, constants.GamepadButtonDPadDown},
	}
	if !reflect.DeepEqual(rec.edges, want) {
		t.Errorf("edges = %v, want %v", rec.edges, want)
	}
}
