package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~rockorager/halfblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs([]string{"a.png"}, io.Discard, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, halfblock.Config{}, opts.cfg)
	assert.Equal(t, []string{"a.png"}, opts.files)
	assert.False(t, opts.verbose)
}

func TestParseArgsFlags(t *testing.T) {
	args := []string{
		"-x", "4",
		"-y", "-2",
		"-truecolor",
		"-transparent",
		"-width", "30",
		"-v",
		"a.png", "b.gif",
	}
	opts, err := parseArgs(args, io.Discard, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, halfblock.Config{
		X:           4,
		Y:           -2,
		TrueColor:   true,
		Transparent: true,
	}, opts.cfg)
	assert.Equal(t, 30, opts.width)
	assert.True(t, opts.verbose)
	assert.Equal(t, []string{"a.png", "b.gif"}, opts.files)
}

func TestParseArgsTrueColorFromEnv(t *testing.T) {
	env := envOf(map[string]string{
		"TERM":      "xterm-256color",
		"COLORTERM": "truecolor",
	})
	opts, err := parseArgs([]string{"a.png"}, io.Discard, env)
	require.NoError(t, err)
	assert.True(t, opts.cfg.TrueColor)

	opts, err = parseArgs([]string{"-truecolor=false", "a.png"}, io.Discard, env)
	require.NoError(t, err)
	assert.False(t, opts.cfg.TrueColor)
}

func TestParseArgsConfigFile(t *testing.T) {
	path := writeConfig(t, `
x = 2
y = 5
absolute = true
transparent = true
height = 12
`)
	opts, err := parseArgs([]string{"-config", path, "-y", "1", "a.png"}, io.Discard, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, halfblock.Config{
		AbsoluteOffset: true,
		X:              2,
		Y:              1,
		Transparent:    true,
	}, opts.cfg)
	assert.Equal(t, 12, opts.height)
}

func TestParseArgsDefaultConfigLocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "halfblock"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "halfblock", "config.toml"), []byte("x = 9\n"), 0o600))

	opts, err := parseArgs([]string{"a.png"}, io.Discard, envOf(map[string]string{
		"XDG_CONFIG_HOME": dir,
	}))
	require.NoError(t, err)
	assert.Equal(t, uint16(9), opts.cfg.X)

	// a missing default file is fine
	_, err = parseArgs([]string{"a.png"}, io.Discard, envOf(map[string]string{
		"XDG_CONFIG_HOME": t.TempDir(),
	}))
	assert.NoError(t, err)
}

func TestParseArgsErrors(t *testing.T) {
	unknown := writeConfig(t, "colour = true\n")
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no files",
			args: []string{},
		},
		{
			name: "absolute with negative y",
			args: []string{"-absolute", "-y", "-1", "a.png"},
		},
		{
			name: "x out of range",
			args: []string{"-x", "70000", "a.png"},
		},
		{
			name: "y out of range",
			args: []string{"-y", "-40000", "a.png"},
		},
		{
			name: "negative width",
			args: []string{"-width", "-3", "a.png"},
		},
		{
			name: "missing explicit config",
			args: []string{"-config", filepath.Join(t.TempDir(), "nope.toml"), "a.png"},
		},
		{
			name: "unknown config key",
			args: []string{"-config", unknown, "a.png"},
		},
		{
			name: "unknown flag",
			args: []string{"-bogus", "a.png"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseArgs(test.args, io.Discard, envOf(nil))
			assert.Error(t, err)
		})
	}
}

func TestParseArgsAbsoluteNegativeIsConfigError(t *testing.T) {
	_, err := parseArgs([]string{"-absolute", "-y", "-1", "a.png"}, io.Discard, envOf(nil))
	var cfgErr *halfblock.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
