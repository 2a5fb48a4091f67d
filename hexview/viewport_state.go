package hexview

import "github.com/iw2rmb/hexed/memory"

// ViewportState is a stable host-facing snapshot of the view geometry.
type ViewportState struct {
	// TopRow is the grid row rendered at screen row 0.
	TopRow int
	// VisibleRows is the number of data rows available for rendering.
	VisibleRows int
	// Cols is the number of bytes per row in use.
	Cols int
	// First and Last are the visible address bounds, or NoAddr.
	First, Last memory.Addr
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	rows := m.visibleRowCount()
	first, last := memory.NewGrid(m.cols).Visible(m.topRow, rows, m.sess.Size())
	return ViewportState{
		TopRow:      m.topRow,
		VisibleRows: rows,
		Cols:        m.cols,
		First:       first,
		Last:        last,
	}
}

// AddrAt maps viewport-local screen coordinates to the address drawn there.
// Both the hex and the text column resolve to their byte. It returns NoAddr
// outside the data rows.
func (m Model) AddrAt(x, y int) memory.Addr {
	if y < 0 || y >= m.visibleRowCount() || x < 0 {
		return memory.NoAddr
	}
	col := m.geometry().colAt(x)
	return memory.NewGrid(m.cols).Addr(m.topRow+y, col, m.sess.Size())
}

// AddrToScreen maps an address to viewport-local coordinates of its hex
// cell. ok is false when the address is not visible.
func (m Model) AddrToScreen(a memory.Addr) (x, y int, ok bool) {
	if !a.Valid(m.sess.Size()) {
		return 0, 0, false
	}
	g := memory.NewGrid(m.cols)
	y = g.Row(a) - m.topRow
	x = m.geometry().cellX(g.Col(a))
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	return x, y, true
}
