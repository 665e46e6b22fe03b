package input

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
)

type fakeDevice struct {
	mu        sync.Mutex
	connected map[int]bool
	identity  map[int]Identity
	buttons   map[int]bool
	axes      map[int]float32
	rumbles   []uint16
	rumbled   chan struct{}
}

func newFakeDevice(ids ...int) *fakeDevice {
	d := &fakeDevice{
		connected: map[int]bool{},
		identity:  map[int]Identity{},
		buttons:   map[int]bool{},
		axes:      map[int]float32{},
		rumbled:   make(chan struct{}, 8),
	}
	for _, id := range ids {
		d.connected[id] = true
		d.identity[id] = Identity{Name: "Test Pad", VendorID: 0x045e, ProductID: 0x028e}
	}
	return d
}

func (d *fakeDevice) Connected(id int) bool            { return d.connected[id] }
func (d *fakeDevice) Identify(id int) Identity         { return d.identity[id] }
func (d *fakeDevice) ButtonPressed(_, button int) bool { return d.buttons[button] }
func (d *fakeDevice) Axis(_, axis int) float32         { return d.axes[axis] }

func (d *fakeDevice) Rumble(_ int, strength uint16, _ time.Duration) error {
	d.mu.Lock()
	d.rumbles = append(d.rumbles, strength)
	d.mu.Unlock()
	d.rumbled <- struct{}{}
	return nil
}

type edge struct {
	pressed bool
	button  constants.GamepadButton
}

type recordingListener struct {
	edges        []edge
	connected    []int
	disconnected []int
}

func (r *recordingListener) GamepadButtonPressed(b constants.GamepadButton) {
	r.edges = append(r.edges, edge{true, b})
}

func (r *recordingListener) GamepadButtonReleased(b constants.GamepadButton) {
	r.edges = append(r.edges, edge{false, b})
}

func (r *recordingListener) GamepadConnected(id int)    { r.connected = append(r.connected, id) }
func (r *recordingListener) GamepadDisconnected(id int) { r.disconnected = append(r.disconnected, id) }

func newTestGamepad(t *testing.T) (*Gamepad, *fakeDevice, *recordingListener) {
	t.Helper()
	dev := newFakeDevice(0)
	g := NewGamepad(dev, WithDeadZones(10, 1), WithTriggerThreshold(50))
	g.SetActiveDevice(0)
	rec := &recordingListener{}
	g.AddListener(rec)
	return g, dev, rec
}

func TestTriggerEdgeSynthesis(t *testing.T) {
	tests := []struct {
		name    string
		samples []float32
		want    []edge
	}{
		{
			name:    "left trigger full pull",
			samples: []float32{0, 60, 60, 0},
			want: []edge{
				{true, constants.GamepadButtonLeftTrigger},
				{false, constants.GamepadButtonLeftTrigger},
			},
		},
		{
			name:    "below threshold",
			samples: []float32{0, 10, 0},
			want:    nil,
		},
		{
			name:    "right trigger is negative",
			samples: []float32{0, -80, 0},
			want: []edge{
				{true, constants.GamepadButtonRightTrigger},
				{false, constants.GamepadButtonRightTrigger},
			},
		},
		{
			name:    "partial release keeps trigger down",
			samples: []float32{0, 70, 30, 70, 0},
			want: []edge{
				{true, constants.GamepadButtonLeftTrigger},
				{false, constants.GamepadButtonLeftTrigger},
			},
		},
		{
			name:    "sign flip releases then presses",
			samples: []float32{0, 70, -70, 0},
			want: []edge{
				{true, constants.GamepadButtonLeftTrigger},
				{false, constants.GamepadButtonLeftTrigger},
				{true, constants.GamepadButtonRightTrigger},
				{false, constants.GamepadButtonRightTrigger},
			},
		},
		{
			name:    "inside dead zone is zero",
			samples: []float32{0, 60, 0.5},
			want: []edge{
				{true, constants.GamepadButtonLeftTrigger},
				{false, constants.GamepadButtonLeftTrigger},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, rec := newTestGamepad(t)
			for _, s := range tt.samples {
				g.axis(0, RawAxisTriggers, s)
			}
			if !reflect.DeepEqual(rec.edges, tt.want) {
				t.Errorf("edges = %v, want %v", rec.edges, tt.want)
			}
		})
	}
}

func TestDPadEdgeSynthesis(t *testing.T) {
	tests := []struct {
		name    string
		axis    int
		samples []float32
		want    []edge
	}{
		{
			name:    "left then right",
			axis:    RawAxisDPadX,
			samples: []float32{0, -100, -100, 0, 100},
			want: []edge{
				{true, constants.GamepadButtonDPadLeft},
				{false, constants.GamepadButtonDPadLeft},
				{true, constants.GamepadButtonDPadRight},
			},
		},
		{
			name:    "vertical",
			axis:    RawAxisDPadY,
			samples: []float32{100, 0, -100, 0},
			want: []edge{
				{true, constants.GamepadButtonDPadUp},
				{false, constants.GamepadButtonDPadUp},
				{true, constants.GamepadButtonDPadDown},
				{false, constants.GamepadButtonDPadDown},
			},
		},
		{
			name:    "direct flip",
			axis:    RawAxisDPadX,
			samples: []float32{-100, 100},
			want: []edge{
				{true, constants.GamepadButtonDPadLeft},
				{false, constants.GamepadButtonDPadLeft},
				{true, constants.GamepadButtonDPadRight},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, rec := newTestGamepad(t)
			for _, s := range tt.samples {
				g.axis(0, tt.axis, s)
			}
			if !reflect.DeepEqual(rec.edges, tt.want) {
				t.Errorf("edges = %v, want %v", rec.edges, tt.want)
			}
		})
	}
}

func TestSynthesizedButtonState(t *testing.T) {
	g, _, _ := newTestGamepad(t)

	g.axis(0, RawAxisDPadX, -100)
	if !g.IsButtonPressed(constants.GamepadButtonDPadLeft) {
		t.Error("DPadLeft should read pressed after a -100 sample")
	}
	if g.IsButtonPressed(constants.GamepadButtonDPadRight) {
		t.Error("DPadRight should not read pressed")
	}

	g.axis(0, RawAxisDPadX, 0)
	if g.IsButtonPressed(constants.GamepadButtonDPadLeft) {
		t.Error("DPadLeft should read released after a 0 sample")
	}
}

func TestEventsFromOtherDevicesIgnored(t *testing.T) {
	g, _, rec := newTestGamepad(t)

	g.axis(1, RawAxisDPadX, 100)
	g.button(1, 0, true)

	if len(rec.edges) != 0 {
		t.Errorf("edges = %v, want none", rec.edges)
	}
}

func TestTranslateButton(t *testing.T) {
	tests := []struct {
		family Family
		in     constants.GamepadButton
		want   constants.GamepadButton
	}{
		{FamilyDefault, constants.GamepadButtonA, constants.GamepadButtonA},
		{FamilyDefault, constants.GamepadButtonSelect, constants.GamepadButtonSelect},
		{FamilyDualSense, constants.GamepadButtonA, constants.GamepadButtonX},
		{FamilyDualSense, constants.GamepadButtonB, constants.GamepadButtonA},
		{FamilyDualSense, constants.GamepadButtonX, constants.GamepadButtonB},
		{FamilyDualSense, constants.GamepadButtonY, constants.GamepadButtonY},
		{FamilyDualSense, constants.GamepadButtonSelect, constants.GamepadButtonLeftTrigger},
		{FamilyDualSense, constants.GamepadButtonStart, constants.GamepadButtonRightTrigger},
		{FamilyDualSense, constants.GamepadButtonLeftStick, constants.GamepadButtonSelect},
		{FamilyDualSense, constants.GamepadButtonRightStick, constants.GamepadButtonStart},
		{FamilyDualSense, constants.GamepadButtonLeftTrigger, constants.GamepadButtonLeftStick},
		{FamilyDualSense, constants.GamepadButtonRightTrigger, constants.GamepadButtonRightStick},
	}
	for _, tt := range tests {
		t.Run(tt.family.String()+"/"+tt.in.GetName(), func(t *testing.T) {
			if got := TranslateButton(tt.family, tt.in); got != tt.want {
				t.Errorf("TranslateButton(%v, %v) = %v, want %v", tt.family, tt.in.GetName(), got.GetName(), tt.want.GetName())
			}
		})
	}
}

func TestDualSenseButtonsArePolledThroughRemap(t *testing.T) {
	dev := newFakeDevice(0)
	dev.identity[0] = Identity{Name: "DualSense", VendorID: constants.SonyVendorID, ProductID: constants.DualSenseProductID}
	g := NewGamepad(dev)
	g.SetActiveDevice(0)

	if g.Family() != FamilyDualSense {
		t.Fatalf("Family() = %v, want dualsense", g.Family())
	}

	// Raw button 1 is the DualSense confirm button.
	dev.buttons[1] = true
	if !g.IsButtonPressed(constants.GamepadButtonA) {
		t.Error("IsButtonPressed(A) should poll raw button 1 on a DualSense")
	}
	if g.IsButtonPressed(constants.GamepadButtonB) {
		t.Error("IsButtonPressed(B) should not be pressed")
	}

	rec := &recordingListener{}
	g.AddListener(rec)
	g.button(0, 1, true)
	want := []edge{{true, constants.GamepadButtonA}}
	if !reflect.DeepEqual(rec.edges, want) {
		t.Errorf("edges = %v, want %v", rec.edges, want)
	}
}

func TestDualSenseRightStickAxes(t *testing.T) {
	dev := newFakeDevice(0)
	dev.identity[0] = Identity{VendorID: constants.SonyVendorID, ProductID: constants.DualSenseProductID}
	dev.axes[2] = 80
	dev.axes[3] = -5
	g := NewGamepad(dev)
	g.SetActiveDevice(0)

	x, y := g.RightStick()
	if x != 80 || y != 0 {
		t.Errorf("RightStick() = (%v, %v), want (80, 0)", x, y)
	}

	rec := &recordingListener{}
	g.AddListener(rec)
	g.axis(0, 2, 100)
	if len(rec.edges) != 0 {
		t.Errorf("right stick samples must not synthesize trigger edges, got %v", rec.edges)
	}
}

func TestStickDeadZone(t *testing.T) {
	g, dev, _ := newTestGamepad(t)
	dev.axes[0] = 9
	dev.axes[1] = -40

	x, y := g.LeftStick()
	if x != 0 || y != -40 {
		t.Errorf("LeftStick() = (%v, %v), want (0, -40)", x, y)
	}
}

func TestVibrateDropsOverlappingRequests(t *testing.T) {
	g, dev, _ := newTestGamepad(t)

	release := make(chan struct{})
	g.sleep = func(time.Duration) { <-release }

	if !g.Vibrate(1000, time.Second) {
		t.Fatal("first Vibrate should be accepted")
	}
	<-dev.rumbled

	if g.Vibrate(2000, time.Second) {
		t.Error("second Vibrate should be dropped while the first is running")
	}

	close(release)
	<-dev.rumbled // stop

	deadline := time.After(time.Second)
	for g.IsVibrating() {
		select {
		case <-deadline:
			t.Fatal("vibration flag was never cleared")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	dev.mu.Lock()
	defer dev.mu.Unlock()
	if want := []uint16{1000, 0}; !reflect.DeepEqual(dev.rumbles, want) {
		t.Errorf("rumbles = %v, want %v", dev.rumbles, want)
	}
}

func TestVibrateUnavailableOnDualSense(t *testing.T) {
	dev := newFakeDevice(0)
	dev.identity[0] = Identity{VendorID: constants.SonyVendorID, ProductID: constants.DualSenseProductID}
	g := NewGamepad(dev)
	g.SetActiveDevice(0)

	if g.Vibrate(1000, time.Millisecond) {
		t.Error("Vibrate should be refused on a DualSense")
	}
}

func TestVibrateClampsStrength(t *testing.T) {
	g, dev, _ := newTestGamepad(t)
	g.sleep = func(time.Duration) {}

	g.Vibrate(1<<20, time.Millisecond)
	<-dev.rumbled
	<-dev.rumbled

	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.rumbles[0] != constants.MaxVibration {
		t.Errorf("strength = %d, want %d", dev.rumbles[0], constants.MaxVibration)
	}
}
