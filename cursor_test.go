package halfblock

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceCursor(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name:     "no offset",
			cfg:      Config{},
			expected: "",
		},
		{
			name:     "absolute",
			cfg:      Config{AbsoluteOffset: true, Y: 4},
			expected: "\x1b[5;1H",
		},
		{
			name:     "absolute top",
			cfg:      Config{AbsoluteOffset: true},
			expected: "\x1b[1;1H",
		},
		{
			name:     "relative up",
			cfg:      Config{Y: -3},
			expected: "\x1b[3F",
		},
		{
			name:     "relative down scrolls",
			cfg:      Config{Y: 2},
			expected: "\n\n",
		},
		{
			name:     "x is applied per row",
			cfg:      Config{X: 7},
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := newWriter(&bytes.Buffer{}, log)
			placeCursor(w, test.cfg)
			assert.Equal(t, test.expected, w.buf.String())
		})
	}
}

func TestRestoreCursor(t *testing.T) {
	w := newWriter(&bytes.Buffer{}, log)
	restoreCursor(w, 10, 7)
	assert.Equal(t, "\x1b[3E", w.buf.String())

	w = newWriter(&bytes.Buffer{}, log)
	restoreCursor(w, 10, 10)
	restoreCursor(w, 10, 12)
	assert.Equal(t, "", w.buf.String())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Y: -1}.Validate())
	assert.NoError(t, Config{AbsoluteOffset: true, Y: 0}.Validate())

	err := Config{AbsoluteOffset: true, Y: -1}.Validate()
	var cfgErr *ConfigError
	if assert.ErrorAs(t, err, &cfgErr) {
		assert.Contains(t, cfgErr.Error(), "negative y")
	}
}
