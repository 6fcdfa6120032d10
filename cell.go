package halfblock

const (
	upperHalfBlock = "▀"
	lowerHalfBlock = "▄"
)

// Cell is one terminal character position. Background carries the top pixel
// and Foreground the bottom pixel. An unset Color leaves that half of the cell
// alone
type Cell struct {
	Background Color
	Foreground Color
}
