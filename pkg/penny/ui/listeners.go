package ui

// ButtonListener is notified when a Button fires.
type ButtonListener interface {
	ButtonPressed(id string)
}

// ToggleButtonListener receives the value a ToggleButton flipped to.
type ToggleButtonListener interface {
	ToggleButtonPressed(id string, value bool)
}

// SliderListener receives a Slider's value whenever it changes.
type SliderListener interface {
	SliderMoved(id string, value float32)
}

// ButtonFunc adapts a function to ButtonListener.
type ButtonFunc func(id string)

func (f ButtonFunc) ButtonPressed(id string) { f(id) }

type ToggleButtonFunc func(id string, value bool)

func (f ToggleButtonFunc) ToggleButtonPressed(id string, value bool) { f(id, value) }

type SliderFunc func(id string, value float32)

func (f SliderFunc) SliderMoved(id string, value float32) { f(id, value) }
