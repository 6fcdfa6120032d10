package halfblock

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	opaque := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	faint := color.NRGBA{R: 10, G: 20, B: 30, A: 1}
	transparent := color.NRGBA{R: 10, G: 20, B: 30, A: 0}

	t.Run("opaque", func(t *testing.T) {
		cfg := Config{TrueColor: true, Transparent: true}
		assert.Equal(t, RGBColor(10, 20, 30), Resolve(opaque, 3, 4, cfg))
	})
	t.Run("any alpha is painted", func(t *testing.T) {
		cfg := Config{TrueColor: true, Transparent: true}
		assert.Equal(t, RGBColor(10, 20, 30), Resolve(faint, 0, 0, cfg))
	})
	t.Run("transparent passthrough", func(t *testing.T) {
		cfg := Config{TrueColor: true, Transparent: true}
		assert.False(t, Resolve(transparent, 0, 0, cfg).IsSet())
	})
	t.Run("checkerboard truecolor", func(t *testing.T) {
		cfg := Config{TrueColor: true}
		assert.Equal(t, RGBColor(102, 102, 102), Resolve(transparent, 0, 0, cfg))
		assert.Equal(t, RGBColor(153, 153, 153), Resolve(transparent, 0, 1, cfg))
		assert.Equal(t, RGBColor(153, 153, 153), Resolve(transparent, 1, 0, cfg))
		assert.Equal(t, RGBColor(102, 102, 102), Resolve(transparent, 1, 1, cfg))
		assert.Equal(t, RGBColor(102, 102, 102), Resolve(transparent, 7, 3, cfg))
	})
	t.Run("checkerboard indexed", func(t *testing.T) {
		cfg := Config{}
		assert.Equal(t, Quantize(102, 102, 102, false), Resolve(transparent, 2, 4, cfg))
		assert.Equal(t, Quantize(153, 153, 153, false), Resolve(transparent, 2, 5, cfg))
	})
}

func TestCheckerboardIgnoresContent(t *testing.T) {
	cfg := Config{TrueColor: true}
	for row := 0; row < 4; row += 1 {
		for col := 0; col < 4; col += 1 {
			first := Resolve(color.NRGBA{R: 1, G: 2, B: 3}, row, col, cfg)
			second := Resolve(color.NRGBA{R: 200, G: 100, B: 50}, row, col, cfg)
			assert.Equal(t, first, second)
		}
	}
}
