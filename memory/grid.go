package memory

// Grid maps linear addresses onto rows of Cols bytes. The last row may be
// partial.
type Grid struct {
	Cols int
}

// NewGrid returns a Grid with cols clamped to at least 1.
func NewGrid(cols int) Grid {
	if cols < 1 {
		cols = 1
	}
	return Grid{Cols: cols}
}

func (g Grid) cols() int {
	if g.Cols < 1 {
		return 1
	}
	return g.Cols
}

// Row returns the row holding a.
func (g Grid) Row(a Addr) int { return int(a) / g.cols() }

// Col returns the column of a within its row.
func (g Grid) Col(a Addr) int { return int(a) % g.cols() }

// RowStart returns the first address of row.
func (g Grid) RowStart(row int) Addr { return Addr(row * g.cols()) }

// RowEnd returns the last address of row in a source of size bytes, or NoAddr
// when the row is past the end.
func (g Grid) RowEnd(row, size int) Addr {
	start := int(g.RowStart(row))
	if row < 0 || start >= size {
		return NoAddr
	}
	end := start + g.cols() - 1
	if end >= size {
		end = size - 1
	}
	return Addr(end)
}

// Addr returns the address at (row, col), or NoAddr when it is outside a
// source of size bytes.
func (g Grid) Addr(row, col, size int) Addr {
	if row < 0 || col < 0 || col >= g.cols() {
		return NoAddr
	}
	a := Addr(row*g.cols() + col)
	if !a.Valid(size) {
		return NoAddr
	}
	return a
}

// RowCount returns the number of rows needed for size bytes.
func (g Grid) RowCount(size int) int {
	if size <= 0 {
		return 0
	}
	c := g.cols()
	return (size + c - 1) / c
}

// Visible returns the first and last addresses shown by rows starting at
// topRow. Both are NoAddr when nothing is visible.
func (g Grid) Visible(topRow, rows, size int) (first, last Addr) {
	if rows <= 0 || size <= 0 {
		return NoAddr, NoAddr
	}
	if topRow < 0 {
		topRow = 0
	}
	first = g.RowStart(topRow)
	if !first.Valid(size) {
		return NoAddr, NoAddr
	}
	lastRow := topRow + rows - 1
	if max := g.RowCount(size) - 1; lastRow > max {
		lastRow = max
	}
	return first, g.RowEnd(lastRow, size)
}
