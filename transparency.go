package halfblock

import "image/color"

// Checkerboard tones used in place of fully transparent pixels
const (
	checkerDark  uint8 = 102
	checkerLight uint8 = 153
)

// Resolve decides the color for the pixel at row, col (in pixels, counted
// from the image origin). Opaque and partially transparent samples are
// quantized. Fully transparent samples are left unpainted when
// cfg.Transparent is set, otherwise they become a checkerboard tone
func Resolve(c color.NRGBA, row int, col int, cfg Config) Color {
	if c.A != 0 {
		return Quantize(c.R, c.G, c.B, cfg.TrueColor)
	}
	if cfg.Transparent {
		return 0
	}
	v := checkerboard(row, col)
	return Quantize(v, v, v, cfg.TrueColor)
}

func checkerboard(row int, col int) uint8 {
	if row%2 == col%2 {
		return checkerDark
	}
	return checkerLight
}
