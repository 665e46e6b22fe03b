package input

import (
	"fmt"
	"time"
)

// Identity describes a connected controller.
type Identity struct {
	Name      string
	VendorID  uint16
	ProductID uint16
}

func (i Identity) String() string {
	return fmt.Sprintf("%s (%04x:%04x)", i.Name, i.VendorID, i.ProductID)
}

// Device is the backend a Gamepad polls. Button and axis indices are raw;
// axis positions are normalised to [-100, 100].
type Device interface {
	Connected(id int) bool
	Identify(id int) Identity
	ButtonPressed(id, button int) bool
	Axis(id, axis int) float32
	Rumble(id int, strength uint16, duration time.Duration) error
}
