package halfblock

// renderRow writes one row of cells followed by a style reset and a newline.
// The top pixel of a half block glyph is the cell background and the bottom
// pixel the foreground. When only one pixel has a color, the glyph covering
// that half is drawn in the foreground color so the other half keeps the
// terminal background. When last is set the row has no bottom pixels.
func renderRow(w *writer, cells []Cell, last bool) {
	for _, c := range cells {
		var (
			glyph string
			fg    Color
			bg    Color
		)
		switch {
		case last && !c.Background.IsSet():
			w.Printf(cuf, 1)
			continue
		case last:
			glyph = upperHalfBlock
			fg = c.Background
		case !c.Background.IsSet() && !c.Foreground.IsSet():
			w.Printf(cuf, 1)
			continue
		case !c.Foreground.IsSet():
			// bottom is transparent
			glyph = upperHalfBlock
			fg = c.Background
		case !c.Background.IsSet():
			// top is transparent
			glyph = lowerHalfBlock
			fg = c.Foreground
		default:
			glyph = lowerHalfBlock
			fg = c.Foreground
			bg = c.Background
		}
		w.WriteString(sgrReset)
		w.WriteString(sgrColor(fg, false))
		w.WriteString(sgrColor(bg, true))
		w.WriteString(glyph)
	}
	w.WriteString(sgrReset)
	w.WriteString("\n")
}
