//go:build !linux

package input

import (
	"errors"
	"log/slog"
	"time"
)

var ErrRumbleUnsupported = errors.New("rumble not supported by device")

var errEvdevUnsupported = errors.New("evdev is only available on linux")

// EvdevSource is unavailable off Linux; OpenEvdev always fails.
type EvdevSource struct{}

func OpenEvdev(string, *slog.Logger) (*EvdevSource, error) {
	return nil, errEvdevUnsupported
}

func (s *EvdevSource) Poll(func(Event))                        {}
func (s *EvdevSource) Connected(int) bool                      { return false }
func (s *EvdevSource) Identify(int) Identity                   { return Identity{} }
func (s *EvdevSource) ButtonPressed(int, int) bool             { return false }
func (s *EvdevSource) Axis(int, int) float32                   { return 0 }
func (s *EvdevSource) Rumble(int, uint16, time.Duration) error { return ErrRumbleUnsupported }
func (s *EvdevSource) Close() error                            { return nil }
