package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Device Status Report - Cursor Position Report
const dsrcpr = "\x1b[6n"

// ErrTimeout is returned when the terminal doesn't answer a query in time
var ErrTimeout = errors.New("terminal did not respond")

// CursorPosition reports the current cursor position of the terminal behind
// p. 0,0 is the upper left corner. The pty is placed in raw mode for the
// duration of the query. Reports -1,-1 and an error if the terminal doesn't
// answer within timeout
func CursorPosition(p Pty, timeout time.Duration) (col int, row int, err error) {
	if err := p.MakeRaw(); err != nil {
		return -1, -1, fmt.Errorf("raw mode: %w", err)
	}
	defer p.Restore()

	if _, err := io.WriteString(p, dsrcpr); err != nil {
		return -1, -1, fmt.Errorf("request cursor position: %w", err)
	}

	deadline := time.Now().Add(timeout)
	resp := []byte{}
	buf := make([]byte, 64)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return -1, -1, ErrTimeout
		}
		ready, err := p.Poll(remaining)
		if err != nil {
			return -1, -1, fmt.Errorf("poll terminal: %w", err)
		}
		if !ready {
			return -1, -1, ErrTimeout
		}
		n, err := p.Read(buf)
		if err != nil {
			return -1, -1, fmt.Errorf("read cursor position: %w", err)
		}
		resp = append(resp, buf[:n]...)
		if col, row, ok := parseCPR(resp); ok {
			return col, row, nil
		}
	}
}

// parseCPR finds a cursor position report (CSI row ; col R) in b and returns
// its 0-indexed position. Input the user typed before the report arrived is
// skipped
func parseCPR(b []byte) (col int, row int, ok bool) {
	for {
		i := bytes.Index(b, []byte("\x1b["))
		if i < 0 {
			return 0, 0, false
		}
		b = b[i+2:]
		end := bytes.IndexByte(b, 'R')
		if end < 0 {
			return 0, 0, false
		}
		params := bytes.Split(b[:end], []byte(";"))
		if len(params) != 2 {
			continue
		}
		r, err := strconv.Atoi(string(params[0]))
		if err != nil || r < 1 {
			continue
		}
		c, err := strconv.Atoi(string(params[1]))
		if err != nil || c < 1 {
			continue
		}
		return c - 1, r - 1, true
	}
}
