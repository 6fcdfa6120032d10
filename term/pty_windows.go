//go:build windows

package term

import (
	"time"

	"golang.org/x/sys/windows"
)

type conPty struct {
	stdin   windows.Handle
	stdout  windows.Handle
	inMode  uint32
	outMode uint32
	raw     bool
}

func openPty() (Pty, error) {
	stdin, err := openConsole("CONIN$")
	if err != nil {
		return nil, err
	}
	stdout, err := openConsole("CONOUT$")
	if err != nil {
		windows.CloseHandle(stdin)
		return nil, err
	}
	pty := &conPty{
		stdin:  stdin,
		stdout: stdout,
	}
	return pty, nil
}

func openConsole(name string) (windows.Handle, error) {
	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return windows.InvalidHandle, err
	}
	return windows.CreateFile(
		path,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
}

func (pty *conPty) Read(p []byte) (n int, err error) {
	var done uint32
	err = windows.ReadFile(pty.stdin, p, &done, nil)
	return int(done), err
}

func (pty *conPty) Write(p []byte) (n int, err error) {
	var done uint32
	err = windows.WriteFile(pty.stdout, p, &done, nil)
	return int(done), err
}

func (pty *conPty) Close() error {
	windows.CloseHandle(pty.stdin)
	windows.CloseHandle(pty.stdout)
	return nil
}

func (pty *conPty) MakeRaw() error {
	if err := windows.GetConsoleMode(pty.stdin, &pty.inMode); err != nil {
		return err
	}
	if err := windows.GetConsoleMode(pty.stdout, &pty.outMode); err != nil {
		return err
	}
	in := pty.inMode &^ (windows.ENABLE_ECHO_INPUT |
		windows.ENABLE_LINE_INPUT |
		windows.ENABLE_PROCESSED_INPUT)
	in |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(pty.stdin, in); err != nil {
		return err
	}
	out := pty.outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	if err := windows.SetConsoleMode(pty.stdout, out); err != nil {
		return err
	}
	pty.raw = true
	return nil
}

func (pty *conPty) Restore() error {
	if !pty.raw {
		return nil
	}
	pty.raw = false
	if err := windows.SetConsoleMode(pty.stdin, pty.inMode); err != nil {
		return err
	}
	return windows.SetConsoleMode(pty.stdout, pty.outMode)
}

// Size reports the Pty's current size
func (pty *conPty) Size() (Size, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(pty.stdout, &info); err != nil {
		return Size{}, err
	}
	return Size{
		Row: int(info.Window.Bottom-info.Window.Top) + 1,
		Col: int(info.Window.Right-info.Window.Left) + 1,
	}, nil
}

func (pty *conPty) Poll(timeout time.Duration) (bool, error) {
	ev, err := windows.WaitForSingleObject(pty.stdin, uint32(timeout.Milliseconds()))
	switch ev {
	case windows.WAIT_OBJECT_0:
		return true, nil
	case uint32(windows.WAIT_TIMEOUT):
		return false, nil
	}
	return false, err
}
