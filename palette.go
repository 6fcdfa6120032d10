package halfblock

import (
	"github.com/lucasb-eyer/go-colorful"
)

// cubeLevels are the channel intensities of the 6x6x6 color cube at indices
// 16-231 of the xterm palette
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

type labEntry struct {
	index   uint8
	l, a, b float64
}

// paletteLab holds the L*a*b* coordinates of palette entries 16-255. Entries
// 0-15 are themeable by the user and never chosen
var paletteLab = buildPaletteLab()

// paletteRGB returns the default xterm value of the palette entry at index.
// Indices below 16 have no fixed value and report black
func paletteRGB(index uint8) (uint8, uint8, uint8) {
	switch {
	case index >= 232:
		v := 8 + 10*(index-232)
		return v, v, v
	case index >= 16:
		i := index - 16
		return cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
	}
	return 0, 0, 0
}

func buildPaletteLab() []labEntry {
	entries := make([]labEntry, 0, 240)
	for i := 16; i < 256; i += 1 {
		r, g, b := paletteRGB(uint8(i))
		l, la, lb := toColorful(r, g, b).Lab()
		entries = append(entries, labEntry{
			index: uint8(i),
			l:     l,
			a:     la,
			b:     lb,
		})
	}
	return entries
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Quantize maps an RGB sample to a terminal color. With truecolor the sample
// is passed through unchanged, otherwise the nearest entry of the 256 color
// palette is chosen by distance in L*a*b* space. Ties resolve to the lowest
// index
func Quantize(r uint8, g uint8, b uint8, truecolor bool) Color {
	if truecolor {
		return RGBColor(r, g, b)
	}
	return IndexColor(nearestIndex(r, g, b))
}

func nearestIndex(r, g, b uint8) uint8 {
	l, la, lb := toColorful(r, g, b).Lab()
	best := paletteLab[0].index
	bestDist := -1.0
	for _, e := range paletteLab {
		dl := l - e.l
		da := la - e.a
		db := lb - e.b
		d := dl*dl + da*da + db*db
		if bestDist < 0 || d < bestDist {
			best = e.index
			bestDist = d
		}
	}
	return best
}
