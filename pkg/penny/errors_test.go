package penny

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestInfrastructureError(t *testing.T) {
	tests := []struct {
		name    string
		err     *InfrastructureError
		message string
	}{
		{"with cause", NewInfrastructureError("create_window", fs.ErrNotExist), "penny: create_window: file does not exist"},
		{"without cause", NewInfrastructureError("sdl_init", nil), "penny: sdl_init"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.message {
				t.Errorf("Error() = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestInfrastructureErrorWrapping(t *testing.T) {
	err := fmt.Errorf("starting: %w", NewInfrastructureError("load_options", fs.ErrPermission))

	if !IsInfrastructureError(err) {
		t.Error("IsInfrastructureError should see through wrapping")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("cause should be reachable with errors.Is")
	}
	if IsInfrastructureError(ErrStopped) {
		t.Error("a sentinel is not an infrastructure error")
	}
}
