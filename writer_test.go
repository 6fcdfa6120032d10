package halfblock

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct {
	err    error
	writes int
}

func (f *failWriter) Write(p []byte) (int, error) {
	f.writes += 1
	return 0, f.err
}

func TestWriterFlush(t *testing.T) {
	out := &bytes.Buffer{}
	w := newWriter(out, log)
	assert.NoError(t, w.Flush())
	assert.Equal(t, 0, out.Len())

	w.WriteString("abc")
	w.Printf(cuf, 2)
	assert.Equal(t, 7, w.Len())
	assert.NoError(t, w.Flush())
	assert.Equal(t, "abc\x1b[2C", out.String())
	assert.Equal(t, 0, w.Len())
}

func TestWriterFlushError(t *testing.T) {
	failure := errors.New("device gone")
	out := &failWriter{err: failure}
	w := newWriter(out, log)
	w.WriteString("abc")
	err := w.Flush()
	assert.ErrorIs(t, err, failure)
	assert.False(t, w.closed)
	assert.Equal(t, 0, w.Len())
}
