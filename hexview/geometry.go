package hexview

import "fmt"

// maxAutoCols bounds the column count chosen when Config.Cols is zero.
const maxAutoCols = 64

// rowGeometry is the horizontal layout of one rendered row:
//
//	AAAAAAAA: XX XX XX XX  XX XX XX XX  tttttttt
type rowGeometry struct {
	digits   int
	cols     int
	midCols  int
	showText bool
}

func (g rowGeometry) hexStart() int { return g.digits + 2 }

func (g rowGeometry) gapsBefore(col int) int {
	if g.midCols <= 0 || col <= 0 {
		return 0
	}
	return col / g.midCols
}

// cellX returns the first cell of the hex byte at col.
func (g rowGeometry) cellX(col int) int {
	return g.hexStart() + 3*col + g.gapsBefore(col)
}

// hexEnd is one past the trailing space of the last hex byte.
func (g rowGeometry) hexEnd() int {
	return g.hexStart() + 3*g.cols + g.gapsBefore(g.cols-1)
}

func (g rowGeometry) textStart() int { return g.hexEnd() + 1 }

func (g rowGeometry) width() int {
	if !g.showText {
		return g.hexEnd()
	}
	return g.textStart() + g.cols
}

// colAt maps a row-local x cell to a byte column. Clicks on the address
// column map to column 0; clicks past the row map to the last column.
func (g rowGeometry) colAt(x int) int {
	if g.showText && x >= g.textStart() {
		return clampInt(x-g.textStart(), 0, g.cols-1)
	}
	for col := g.cols - 1; col > 0; col-- {
		if x >= g.cellX(col) {
			return col
		}
	}
	return 0
}

// fitCols returns the largest column count whose row fits width. Counts
// above midCols are rounded down to whole groups.
func fitCols(width, digits, midCols int, showText bool) int {
	best := 1
	for c := 1; c <= maxAutoCols; c++ {
		g := rowGeometry{digits: digits, cols: c, midCols: midCols, showText: showText}
		if g.width() > width {
			break
		}
		best = c
	}
	if midCols > 0 && best > midCols {
		best -= best % midCols
	}
	return best
}

// addrDigits returns the hex digits needed for the highest displayed
// address.
func addrDigits(base, size int) int {
	last := base + size - 1
	if last <= 0 {
		return 1
	}
	return len(fmt.Sprintf("%x", last))
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
