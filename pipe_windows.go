//go:build windows

package halfblock

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isBrokenPipe reports whether err means the reading end of the output has
// been closed
func isBrokenPipe(err error) bool {
	return errors.Is(err, windows.ERROR_BROKEN_PIPE) ||
		errors.Is(err, windows.ERROR_NO_DATA)
}
