package memory

// Command is one discrete navigation input.
type Command int

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdHome // row start (data start with Jump)
	CmdEnd  // row end (data end with Jump)
	CmdPageUp
	CmdPageDown
	CmdSelectAll
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdHome:
		return "home"
	case CmdEnd:
		return "end"
	case CmdPageUp:
		return "pageup"
	case CmdPageDown:
		return "pagedown"
	case CmdSelectAll:
		return "selectall"
	default:
		return "unknown"
	}
}

// Move is a command plus the modifiers held when it was issued.
type Move struct {
	Cmd Command
	// Shift extends the selection from the anchor to the new address; when
	// false the anchor and selection are cleared.
	Shift bool
	// Jump makes Home/End go to the first/last byte of the data.
	Jump bool
}

// ScrollRequest asks the host to move its first visible row to TopRow so that
// Addr is revealed.
type ScrollRequest struct {
	TopRow int
	Addr   Addr
}

// scrollMargin is how many rows from either viewport edge the cursor may get
// before the view follows it.
const scrollMargin = 2

// Apply runs one navigation command. The returned request is valid when ok
// is true. Commands that would leave the data, or that run without an edit
// address, change nothing.
func (s *Session) Apply(m Move) (req ScrollRequest, ok bool) {
	if m.Cmd == CmdSelectAll {
		s.SelectAll()
		return ScrollRequest{}, false
	}

	cur := s.edit
	if !cur.Valid(s.Size()) {
		return ScrollRequest{}, false
	}
	if m.Shift && s.anchor == NoAddr {
		s.anchor = cur
	}
	next, moved := s.target(cur, m)
	if !moved || next == cur {
		return ScrollRequest{}, false
	}

	s.edit = next
	s.preview = next
	if m.Shift {
		s.applySelection(s.anchor, next)
	} else {
		s.anchor = NoAddr
		if !s.sel.IsEmpty() {
			s.sel = EmptyRange
			s.selChanged = true
		}
		s.version++
	}

	switch m.Cmd {
	case CmdPageUp:
		return s.pageScroll(next, -1)
	case CmdPageDown:
		return s.pageScroll(next, 1)
	default:
		return s.reveal(s.layout.TopRow, next)
	}
}

func (s *Session) target(a Addr, m Move) (Addr, bool) {
	n := Addr(s.Size())
	g := s.Grid()
	c := Addr(g.Cols)

	switch m.Cmd {
	case CmdUp:
		if a >= c {
			return a - c, true
		}
	case CmdDown:
		if a+c < n {
			return a + c, true
		}
	case CmdLeft:
		if a > 0 {
			return a - 1, true
		}
	case CmdRight:
		if a+1 < n {
			return a + 1, true
		}
	case CmdHome:
		if m.Jump {
			return 0, true
		}
		return g.RowStart(g.Row(a)), true
	case CmdEnd:
		if m.Jump {
			return n - 1, true
		}
		return g.RowEnd(g.Row(a), int(n)), true
	case CmdPageUp, CmdPageDown:
		delta := Addr(s.layout.PageRows) * c
		if m.Cmd == CmdPageUp {
			delta = -delta
		}
		return clampAddr(a+delta, int(n)), true
	}
	return a, false
}

func (s *Session) pageScroll(a Addr, dir int) (ScrollRequest, bool) {
	if s.layout.VisibleRows <= 0 {
		return ScrollRequest{}, false
	}
	top := clampInt(s.layout.TopRow+dir*s.layout.PageRows, 0, s.maxTopRow())
	return s.reveal(top, a)
}

// reveal computes the first visible row that keeps a at least scrollMargin
// rows away from the viewport edges, starting from top.
func (s *Session) reveal(top int, a Addr) (ScrollRequest, bool) {
	rows := s.layout.VisibleRows
	if rows <= 0 || !a.Valid(s.Size()) {
		return ScrollRequest{}, false
	}
	margin := scrollMargin
	if max := (rows - 1) / 2; margin > max {
		margin = max
	}

	row := s.Grid().Row(a)
	next := top
	switch {
	case row < top+margin:
		next = row - margin
	case row > top+rows-1-margin:
		next = row - (rows - 1 - margin)
	}
	next = clampInt(next, 0, s.maxTopRow())
	if next == s.layout.TopRow {
		return ScrollRequest{}, false
	}
	return ScrollRequest{TopRow: next, Addr: a}, true
}

func (s *Session) maxTopRow() int {
	return maxInt(s.Grid().RowCount(s.Size())-s.layout.VisibleRows, 0)
}
