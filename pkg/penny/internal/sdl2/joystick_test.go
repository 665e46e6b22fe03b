package sdl2

import (
	"reflect"
	"testing"
	"time"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/input"
)

func TestTranslateAxis(t *testing.T) {
	tests := []struct {
		name   string
		family input.Family
		prior  triggerState
		axis   int
		value  int16
		want   []input.Event
	}{
		{
			name:  "left trigger at rest",
			axis:  sdlAxisLeftTrigger,
			value: -32768,
			want:  []input.Event{input.JoystickAxisEvent{Axis: input.RawAxisTriggers, Position: 0}},
		},
		{
			name:  "left trigger pulled",
			axis:  sdlAxisLeftTrigger,
			value: 32767,
			want:  []input.Event{input.JoystickAxisEvent{Axis: input.RawAxisTriggers, Position: 100}},
		},
		{
			name:  "right trigger pulled",
			axis:  sdlAxisRightTrigger,
			value: 32767,
			want:  []input.Event{input.JoystickAxisEvent{Axis: input.RawAxisTriggers, Position: -100}},
		},
		{
			name:  "both triggers cancel",
			prior: triggerState{left: 100},
			axis:  sdlAxisRightTrigger,
			value: 32767,
			want:  []input.Event{input.JoystickAxisEvent{Axis: input.RawAxisTriggers, Position: 0}},
		},
		{
			name:  "right stick x",
			axis:  3,
			value: 32767,
			want:  []input.Event{input.JoystickAxisEvent{Axis: 4, Position: 100}},
		},
		{
			name:  "right stick y",
			axis:  4,
			value: -32768,
			want:  []input.Event{input.JoystickAxisEvent{Axis: 5, Position: -100}},
		},
		{
			name:   "dualsense right stick",
			family: input.FamilyDualSense,
			axis:   3,
			value:  32767,
			want:   []input.Event{input.JoystickAxisEvent{Axis: 2, Position: 100}},
		},
		{
			name:   "dualsense triggers are buttons",
			family: input.FamilyDualSense,
			axis:   sdlAxisLeftTrigger,
			value:  32767,
		},
		{
			name:  "unknown axis",
			axis:  9,
			value: 32767,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.prior
			got := translateAxis(0, tt.family, &state, tt.axis, tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("translateAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubDevice struct{}

func (stubDevice) Connected(int) bool                      { return true }
func (stubDevice) Identify(int) input.Identity             { return input.Identity{Name: "pad"} }
func (stubDevice) ButtonPressed(int, int) bool             { return false }
func (stubDevice) Axis(int, int) float32                   { return 0 }
func (stubDevice) Rumble(int, uint16, time.Duration) error { return nil }

type triggerEdges struct {
	edges []string
}

func (l *triggerEdges) GamepadButtonPressed(b constants.GamepadButton) {
	l.edges = append(l.edges, "press "+b.GetName())
}

func (l *triggerEdges) GamepadButtonReleased(b constants.GamepadButton) {
	l.edges = append(l.edges, "release "+b.GetName())
}

func (l *triggerEdges) GamepadConnected(int)    {}
func (l *triggerEdges) GamepadDisconnected(int) {}

func TestTriggerPullFiresOnce(t *testing.T) {
	g := input.NewGamepad(stubDevice{}, input.WithDeadZones(10, 1), input.WithTriggerThreshold(50))
	g.SetActiveDevice(0)
	rec := &triggerEdges{}
	g.AddListener(rec)
	r := input.NewRouter(g, input.NewMode(), nil, nil)

	var state triggerState
	// Rest, a slow pull to full, then let go.
	for _, v := range []int16{-32768, -16384, 0, 16384, 32767, 0, -32768} {
		for _, ev := range translateAxis(0, input.FamilyDefault, &state, sdlAxisLeftTrigger, v) {
			r.Dispatch(ev)
		}
	}

	pressed := constants.GamepadButtonLeftTrigger.GetName()
	want := []string{"press " + pressed, "release " + pressed}
	if !reflect.DeepEqual(rec.edges, want) {
		t.Errorf("edges = %v, want %v", rec.edges, want)
	}
}
