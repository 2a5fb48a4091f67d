package memory

import "github.com/iw2rmb/hexed/internal/codepoint"

// Selection returns the normalised selection. ok is false when nothing is
// selected.
func (s *Session) Selection() (Range, bool) {
	if s.sel.IsEmpty() {
		return EmptyRange, false
	}
	return s.sel, true
}

// HasSelection reports whether both selection bounds are set.
func (s *Session) HasSelection() bool { return !s.sel.IsEmpty() }

// Anchor returns the fixed end of an in-progress shift-extend, or NoAddr.
func (s *Session) Anchor() Addr { return s.anchor }

// SetAnchor fixes the end a later shift-extend grows from. Out-of-range
// values drop the anchor.
func (s *Session) SetAnchor(a Addr) {
	if !a.Valid(s.Size()) {
		a = NoAddr
	}
	s.anchor = a
}

// SelectionChanged reports and clears the "selection changed" flag.
func (s *Session) SelectionChanged() bool {
	changed := s.selChanged
	s.selChanged = false
	return changed
}

// SetSelection selects the inclusive range between anchor and target in
// either order. Bounds are clamped into the source and, in UTF-8 mode,
// widened to whole code point spans.
func (s *Session) SetSelection(anchor, target Addr) {
	if s.Size() == 0 || anchor == NoAddr || target == NoAddr {
		s.ClearSelection()
		return
	}
	s.applySelection(anchor, target)
}

func (s *Session) applySelection(anchor, target Addr) {
	size := s.Size()
	lo := clampAddr(anchor, size)
	hi := clampAddr(target, size)
	if lo > hi {
		lo, hi = hi, lo
	}
	if s.opt.UTF8 {
		lo = s.spanStart(lo)
		hi = s.spanEnd(hi)
	}
	s.sel = Range{Start: lo, End: hi}
	s.selChanged = true
	s.version++
}

// ClearSelection drops both selection bounds and the anchor.
func (s *Session) ClearSelection() {
	s.anchor = NoAddr
	s.sel = EmptyRange
	s.selChanged = true
	s.version++
}

// SelectAll selects [0, size-1] and anchors at 0.
func (s *Session) SelectAll() {
	if s.Size() == 0 {
		s.ClearSelection()
		return
	}
	s.anchor = 0
	s.applySelection(0, Addr(s.Size()-1))
}

// Span returns the code point span containing a: its first address and
// length. Bytes that are not part of a valid sequence form 1-byte spans.
func (s *Session) Span(a Addr) (start Addr, n int) {
	size := s.Size()
	if !a.Valid(size) {
		return NoAddr, 0
	}
	for back := 0; back < codepoint.MaxLen; back++ {
		p := a - Addr(back)
		if p < 0 {
			break
		}
		if back > 0 && !codepoint.IsContinuation(s.src.Read(a-Addr(back-1))) {
			// Sequences never contain a non-continuation byte after the lead.
			break
		}
		if _, l := codepoint.Decode(s.src.at, size, int(p)); l > back {
			return p, l
		}
	}
	return a, 1
}

// DecodeAt decodes the code point starting at a. n is 0 for invalid bytes.
func (s *Session) DecodeAt(a Addr) (r rune, n int) {
	return codepoint.Decode(s.src.at, s.Size(), int(a))
}

func (s *Session) spanStart(a Addr) Addr {
	start, _ := s.Span(a)
	return start
}

func (s *Session) spanEnd(a Addr) Addr {
	start, n := s.Span(a)
	end := start + Addr(n) - 1
	if int(end) >= s.Size() {
		end = Addr(s.Size() - 1)
	}
	return end
}
