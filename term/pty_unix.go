//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package term

import (
	"errors"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// unixPty is a unix pseudo-terminal
type unixPty struct {
	state *term.State
	fd    int
}

func openPty() (Pty, error) {
	fd, err := syscall.Open("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	p := &unixPty{
		fd: fd,
	}
	return p, nil
}

// FromFile returns a Pty backed by the terminal device f. Closing the Pty
// closes f's descriptor
func FromFile(f *os.File) Pty {
	return &unixPty{
		fd: int(f.Fd()),
	}
}

func (p *unixPty) Read(b []byte) (n int, err error) {
	return syscall.Read(p.fd, b)
}

func (p *unixPty) Write(b []byte) (n int, err error) {
	return syscall.Write(p.fd, b)
}

func (p *unixPty) Close() error {
	return syscall.Close(p.fd)
}

func (p *unixPty) MakeRaw() error {
	termios, err := term.MakeRaw(p.fd)
	if err != nil {
		return err
	}
	p.state = termios
	return nil
}

func (p *unixPty) Restore() error {
	if p.state == nil {
		return nil
	}
	return term.Restore(p.fd, p.state)
}

func (p *unixPty) Size() (Size, error) {
	ws, err := unix.IoctlGetWinsize(p.fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Row:    int(ws.Row),
		Col:    int(ws.Col),
		XPixel: int(ws.Xpixel),
		YPixel: int(ws.Ypixel),
	}, nil
}

func (p *unixPty) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{
			Fd:     int32(p.fd),
			Events: unix.POLLIN,
		},
	}
	deadline := time.Now().Add(timeout)
	for {
		ms := int(time.Until(deadline).Milliseconds())
		if ms < 0 {
			ms = 0
		}
		n, err := unix.Poll(fds, ms)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
