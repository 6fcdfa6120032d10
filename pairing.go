package halfblock

// mode tracks which half of the cell row the next pixel fills
type mode int

const (
	// modeTop appends new cells carrying the pixel as Background
	modeTop mode = iota
	// modeBottom sets the Foreground of cells appended during modeTop
	modeBottom
)

func (m mode) String() string {
	switch m {
	case modeTop:
		return "top"
	case modeBottom:
		return "bottom"
	}
	return "unknown"
}

// pairer consumes pixel colors in raster order and assembles two pixel rows
// into one row of cells
type pairer struct {
	mode  mode
	width int
	// col is the pixel column of the next push
	col int
	// row is the pixel row of the next push
	row   int
	cells []Cell
}

func newPairer(width int) *pairer {
	return &pairer{
		mode:  modeTop,
		width: width,
		cells: make([]Cell, 0, width),
	}
}

// push adds the color of the pixel at (p.row, p.col). It returns true when
// the push completed a row of cells, which must be drained with reset before
// the next push
func (p *pairer) push(c Color) bool {
	switch p.mode {
	case modeTop:
		p.cells = append(p.cells, Cell{Background: c})
		p.col += 1
		if p.col == p.width {
			p.mode = modeBottom
			p.col = 0
			p.row += 1
		}
		return false
	case modeBottom:
		p.cells[p.col].Foreground = c
		p.col += 1
		if p.col == p.width {
			p.col = 0
			p.row += 1
			return true
		}
	}
	return false
}

// reset clears the cells of a completed row and starts the next pair
func (p *pairer) reset() {
	p.cells = p.cells[:0]
	p.mode = modeTop
}

// pending reports whether cells of a top-only row remain, which happens when
// the image has an odd height
func (p *pairer) pending() bool {
	return len(p.cells) > 0
}
