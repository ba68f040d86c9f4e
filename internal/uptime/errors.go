package uptime

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when the operating system could not report the uptime
	ErrUnavailable = errors.New("system uptime unavailable")
	// ErrUnsupportedSource is returned when a named source cannot be used on this platform
	ErrUnsupportedSource = errors.New("unsupported uptime source")
)

// unavailable wraps the underlying cause so that errors.Is matches ErrUnavailable
func unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}
