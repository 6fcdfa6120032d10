package halfblock

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type graphemeWidthMethod int

const (
	// wcwidth follows the locale: East Asian ambiguous characters, which
	// include the half blocks, are two columns in CJK locales
	wcwidth graphemeWidthMethod = iota
	unicodeStd
)

func gwidth(s string, method graphemeWidthMethod) int {
	switch method {
	case unicodeStd:
		return uniseg.StringWidth(s)
	default:
		total := 0
		for _, r := range s {
			total += runewidth.RuneWidth(r)
		}
		return total
	}
}

// GlyphWidth reports how many columns the terminal advances for each half
// block glyph
func GlyphWidth() int {
	w := gwidth(upperHalfBlock, widthMethod)
	if w < 1 {
		return 1
	}
	return w
}

// Footprint reports the number of terminal columns and rows an image of the
// given pixel size covers when printed with cfg. Rows of blank lines added
// by a positive relative Y offset are included
func Footprint(width int, height int, cfg Config) (cols int, rows int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	cols = int(cfg.X) + width*GlyphWidth()
	rows = (height + 1) / 2
	if !cfg.AbsoluteOffset && cfg.Y > 0 {
		rows += int(cfg.Y)
	}
	return cols, rows
}
