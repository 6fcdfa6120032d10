package halfblock

import "fmt"

// Config controls where and how an image is printed
type Config struct {
	// AbsoluteOffset positions the image relative to the top left corner
	// of the terminal instead of the current cursor position
	AbsoluteOffset bool
	// X is the number of columns to move right before each row
	X uint16
	// Y is the row to print at when AbsoluteOffset is set. Otherwise a
	// positive value prints that many blank lines first and a negative
	// value moves the cursor up
	Y int16
	// TrueColor emits 24-bit colors. When false, colors are mapped to the
	// 256 color palette
	TrueColor bool
	// Transparent leaves fully transparent pixels unpainted. When false
	// they are drawn as a gray checkerboard
	Transparent bool
}

// ConfigError is returned when a Config can't be honored. Nothing is written
// to the terminal when it occurs
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Validate checks constraints between fields
func (cfg Config) Validate() error {
	if cfg.AbsoluteOffset && cfg.Y < 0 {
		return &ConfigError{
			Reason: fmt.Sprintf("absolute offset with negative y (%d)", cfg.Y),
		}
	}
	return nil
}
