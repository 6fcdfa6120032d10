package halfblock

import "fmt"

// Color is a terminal color. The zero value represents no color: the half of
// the cell it belongs to is left untouched
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// Params returns the SGR parameters for the color, or an empty slice if the
// color is unset
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// IsSet reports whether the color paints anything
func (c Color) IsSet() bool {
	return c&(indexed|rgb) != 0
}

func (c Color) String() string {
	ps := c.Params()
	switch len(ps) {
	case 1:
		return fmt.Sprintf("index(%d)", ps[0])
	case 3:
		return fmt.Sprintf("rgb(%d,%d,%d)", ps[0], ps[1], ps[2])
	}
	return "none"
}

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates a new Color based on the supplied 24-bit hex value
func HexColor(v uint32) Color {
	return Color(v&0xFFFFFF) | rgb
}
