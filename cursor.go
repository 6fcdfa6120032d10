package halfblock

import (
	"fmt"
	"time"

	"git.sr.ht/~rockorager/halfblock/term"
)

// CursorReporter reports the terminal cursor position. 0,0 is the upper left
// corner
type CursorReporter interface {
	CursorPosition() (col int, row int, err error)
}

// TTYCursor queries the controlling terminal for the cursor position
type TTYCursor struct {
	// Timeout is how long to wait for the terminal to answer
	Timeout time.Duration
}

// CursorPosition opens the controlling terminal, asks for a cursor position
// report and closes it again
func (tc TTYCursor) CursorPosition() (col int, row int, err error) {
	timeout := tc.Timeout
	if timeout <= 0 {
		timeout = 50 * time.Millisecond
	}
	pty, err := term.OpenPty()
	if err != nil {
		return -1, -1, fmt.Errorf("open terminal: %w", err)
	}
	defer pty.Close()
	return term.CursorPosition(pty, timeout)
}

// placeCursor writes the movement that precedes the image. cfg must be valid
func placeCursor(w *writer, cfg Config) {
	switch {
	case cfg.AbsoluteOffset:
		w.Printf(cup, int(cfg.Y)+1, 1)
	case cfg.Y < 0:
		w.Printf(cpl, -int(cfg.Y))
	default:
		// Newlines instead of a cursor move so the terminal scrolls
		for i := 0; i < int(cfg.Y); i += 1 {
			w.WriteString("\n")
		}
	}
}

// restoreCursor moves the cursor back down to before when printing left it
// above where it started
func restoreCursor(w *writer, before int, after int) {
	if before > after {
		w.Printf(cnl, before-after)
	}
}
