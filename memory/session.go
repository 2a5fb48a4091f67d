package memory

// Options configures a Session.
type Options struct {
	// ReadOnly rejects every write regardless of the Source capability.
	ReadOnly bool
	// UTF8 snaps selection bounds to UTF-8 code point spans.
	UTF8 bool
	// HistoryLimit caps undo entries. Zero means 1000; negative disables
	// history.
	HistoryLimit int
}

// Layout is the view geometry the host recomputes every pass.
type Layout struct {
	Cols        int
	PageRows    int
	TopRow      int
	VisibleRows int
}

// Session is the navigation, selection and edit state for one view over one
// Source. A Session must not be shared between views.
type Session struct {
	src     Source
	opt     Options
	layout  Layout
	version uint64

	edit    Addr
	preview Addr

	anchor     Addr
	sel        Range
	selChanged bool

	hl   Range
	hist historyState
}

func New(src Source, opt Options) *Session {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	s := &Session{
		src: src,
		opt: opt,
	}
	s.SetLayout(Layout{Cols: 16})
	s.reset()
	return s
}

func (s *Session) reset() {
	s.edit = NoAddr
	s.preview = NoAddr
	s.anchor = NoAddr
	s.sel = EmptyRange
	s.selChanged = true
	s.hl = EmptyRange
	s.hist = historyState{}
}

// SetSource replaces the byte source and resets every cached address.
func (s *Session) SetSource(src Source) {
	s.src = src
	s.reset()
	s.version++
}

func (s *Session) Source() Source { return s.src }

// Size returns the addressable size of the current source.
func (s *Session) Size() int { return s.src.Len() }

// Version increments on every observable state change.
func (s *Session) Version() uint64 { return s.version }

func (s *Session) Options() Options { return s.opt }

// SetReadOnly toggles write rejection.
func (s *Session) SetReadOnly(ro bool) {
	if s.opt.ReadOnly == ro {
		return
	}
	s.opt.ReadOnly = ro
	s.version++
}

// ReadOnly reports whether writes are rejected, either by option or because
// the source cannot be written.
func (s *Session) ReadOnly() bool {
	return s.opt.ReadOnly || !s.src.Writable()
}

// UTF8 reports whether selection snapping is active.
func (s *Session) UTF8() bool { return s.opt.UTF8 }

// SetUTF8 toggles code point snapping. Turning it on re-snaps the current
// selection.
func (s *Session) SetUTF8(on bool) {
	if s.opt.UTF8 == on {
		return
	}
	s.opt.UTF8 = on
	s.version++
	if on && !s.sel.IsEmpty() {
		s.applySelection(s.sel.Start, s.sel.End)
	}
}

// SetLayout records the grid geometry used by Apply and Goto.
func (s *Session) SetLayout(l Layout) {
	if l.Cols < 1 {
		l.Cols = 1
	}
	if l.PageRows < 1 {
		l.PageRows = maxInt(l.VisibleRows, 1)
	}
	if l.TopRow < 0 {
		l.TopRow = 0
	}
	if l.VisibleRows < 0 {
		l.VisibleRows = 0
	}
	s.layout = l
}

func (s *Session) Layout() Layout { return s.layout }

// Grid returns the grid for the current layout.
func (s *Session) Grid() Grid { return NewGrid(s.layout.Cols) }

// EditAddr returns the address open for editing, or NoAddr.
func (s *Session) EditAddr() Addr { return s.edit }

// Editing reports whether an edit address is set.
func (s *Session) Editing() bool { return s.edit != NoAddr }

// SetEditAddr opens a for editing. Out-of-range values close the cursor.
// The preview address follows the edit address.
func (s *Session) SetEditAddr(a Addr) {
	if !a.Valid(s.Size()) {
		a = NoAddr
	}
	if a == s.edit {
		return
	}
	s.edit = a
	if a != NoAddr {
		s.preview = a
	}
	s.version++
}

// MoveTo opens a for editing as a plain, unshifted cursor move: the anchor
// and the selection are dropped.
func (s *Session) MoveTo(a Addr) {
	s.anchor = NoAddr
	if !s.sel.IsEmpty() {
		s.sel = EmptyRange
		s.selChanged = true
		s.version++
	}
	s.SetEditAddr(a)
}

// CloseEdit returns the session to the idle state and drops the anchor.
func (s *Session) CloseEdit() {
	if s.edit == NoAddr && s.anchor == NoAddr {
		return
	}
	s.edit = NoAddr
	s.anchor = NoAddr
	s.version++
}

// PreviewAddr returns the address used for data-type preview, or NoAddr.
func (s *Session) PreviewAddr() Addr { return s.preview }

// SetPreviewAddr moves the preview address without touching the cursor.
func (s *Session) SetPreviewAddr(a Addr) {
	if !a.Valid(s.Size()) {
		a = NoAddr
	}
	if a == s.preview {
		return
	}
	s.preview = a
	s.version++
}

// Goto opens a for editing and returns a scroll request revealing it.
// Out-of-range addresses are ignored.
func (s *Session) Goto(a Addr) (ScrollRequest, bool) {
	if !a.Valid(s.Size()) {
		return ScrollRequest{}, false
	}
	s.hl = EmptyRange
	s.SetEditAddr(a)
	s.anchor = NoAddr
	return s.reveal(s.layout.TopRow, a)
}

// GotoAndHighlight jumps to min and highlights [min, max).
func (s *Session) GotoAndHighlight(min, max Addr) (ScrollRequest, bool) {
	req, ok := s.Goto(min)
	if !min.Valid(s.Size()) || max <= min {
		return req, ok
	}
	if int(max) > s.Size() {
		max = Addr(s.Size())
	}
	s.hl = Range{Start: min, End: max - 1}
	s.version++
	return req, ok
}

// HighlightRange returns the range set by GotoAndHighlight.
func (s *Session) HighlightRange() Range { return s.hl }

// Highlighted reports whether a is inside the goto highlight or flagged by
// the source's highlight handler.
func (s *Session) Highlighted(a Addr) bool {
	return s.hl.Contains(a) || s.src.Highlight(a)
}

// Read returns the byte at a through the source.
func (s *Session) Read(a Addr) byte { return s.src.Read(a) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
