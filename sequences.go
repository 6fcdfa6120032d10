package halfblock

import "fmt"

const (
	sgrReset = "\x1b[0m"

	// Colors use the legacy semicolon separated form, which every
	// terminal with color support understands
	fgIndexSet = "\x1b[38;5;%dm"
	fgRGBSet   = "\x1b[38;2;%d;%d;%dm"
	bgIndexSet = "\x1b[48;5;%dm"
	bgRGBSet   = "\x1b[48;2;%d;%d;%dm"

	// Cursor movement. All parameters are 1-indexed counts or positions
	cup = "\x1b[%d;%dH"
	cuf = "\x1b[%dC"
	cnl = "\x1b[%dE"
	cpl = "\x1b[%dF"
)

// sgrColor returns the sequence setting c as the foreground (or background)
// color. An unset color produces no sequence
func sgrColor(c Color, background bool) string {
	ps := c.Params()
	switch len(ps) {
	case 1:
		if background {
			return fmt.Sprintf(bgIndexSet, ps[0])
		}
		return fmt.Sprintf(fgIndexSet, ps[0])
	case 3:
		if background {
			return fmt.Sprintf(bgRGBSet, ps[0], ps[1], ps[2])
		}
		return fmt.Sprintf(fgRGBSet, ps[0], ps[1], ps[2])
	}
	return ""
}
