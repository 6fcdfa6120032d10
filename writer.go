package halfblock

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slog"
)

// writer buffers the output of a single print. The internal buffer is reset
// upon flushing. Once the reader of out has gone away, every further write
// and flush is discarded
type writer struct {
	buf    *bytes.Buffer
	out    io.Writer
	log    *slog.Logger
	closed bool
}

func newWriter(out io.Writer, log *slog.Logger) *writer {
	return &writer{
		buf: bytes.NewBuffer(make([]byte, 0, 8192)),
		out: out,
		log: log,
	}
}

func (w *writer) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

func (w *writer) WriteString(s string) (n int, err error) {
	return w.buf.WriteString(s)
}

func (w *writer) Printf(s string, args ...any) (n int, err error) {
	return fmt.Fprintf(w.buf, s, args...)
}

func (w *writer) Len() int {
	return w.buf.Len()
}

// Flush sends the buffered output and clears the buffer. A broken pipe is not
// an error: it marks the writer closed and the rest of the output is dropped
func (w *writer) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	defer w.buf.Reset()
	if w.closed {
		return nil
	}
	_, err := w.out.Write(w.buf.Bytes())
	switch {
	case err == nil:
		return nil
	case isBrokenPipe(err):
		w.log.Debug("output closed by reader", "error", err)
		w.closed = true
		return nil
	default:
		return fmt.Errorf("write output: %w", err)
	}
}
