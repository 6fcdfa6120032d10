// Package term provides access to the controlling terminal
package term

import (
	"io"
	"time"
)

type Pty interface {
	io.ReadWriteCloser

	MakeRaw() error
	Restore() error
	// Size reports the Pty's current size
	Size() (Size, error)
	// Poll waits at most timeout for input to become readable. It reports
	// whether a Read would return without blocking
	Poll(timeout time.Duration) (bool, error)
}

// OpenPty opens a handle to the controlling terminal's pty
func OpenPty() (Pty, error) {
	return openPty()
}

type Size struct {
	Row    int
	Col    int
	XPixel int
	YPixel int
}
