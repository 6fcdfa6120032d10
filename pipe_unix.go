//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package halfblock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isBrokenPipe reports whether err means the reading end of the output has
// been closed, like when piping to head(1)
func isBrokenPipe(err error) bool {
	return errors.Is(err, unix.EPIPE)
}
