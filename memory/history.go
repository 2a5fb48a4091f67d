package memory

// Write describes one byte write applied through the source.
type Write struct {
	Addr   Addr
	Before byte
	After  byte
}

// WriteSource identifies what triggered a write.
type WriteSource uint8

const (
	WriteLocal WriteSource = iota
	WriteUndo
	WriteRedo
)

// Change is the most recent effective write with the versions around it.
type Change struct {
	Source        WriteSource
	VersionBefore uint64
	VersionAfter  uint64
	Write         Write
}

type historyState struct {
	undo []Write
	redo []Write

	last    Change
	hasLast bool
}

// SetByte stores b at a through the source and records it for undo.
// It reports false when the session is read-only or a is out of range.
// Writing the value already present is accepted but not recorded.
func (s *Session) SetByte(a Addr, b byte) bool {
	if s.ReadOnly() || !a.Valid(s.Size()) {
		return false
	}
	before := s.src.Read(a)
	if before == b {
		return true
	}
	w := Write{Addr: a, Before: before, After: b}
	if !s.apply(w, w.After, WriteLocal) {
		return false
	}
	s.recordUndo(w)
	return true
}

func (s *Session) apply(w Write, v byte, src WriteSource) bool {
	if !s.src.Write(w.Addr, v) {
		return false
	}
	before := s.version
	s.version++
	s.hist.last = Change{
		Source:        src,
		VersionBefore: before,
		VersionAfter:  s.version,
		Write:         w,
	}
	s.hist.hasLast = true
	return true
}

func (s *Session) recordUndo(w Write) {
	limit := s.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	s.hist.undo = append(s.hist.undo, w)
	if len(s.hist.undo) > limit {
		s.hist.undo = s.hist.undo[len(s.hist.undo)-limit:]
	}
	s.hist.redo = nil
}

func (s *Session) CanUndo() bool { return len(s.hist.undo) > 0 }

func (s *Session) CanRedo() bool { return len(s.hist.redo) > 0 }

// Undo reverts the most recent write and moves the edit address to it.
func (s *Session) Undo() bool {
	if len(s.hist.undo) == 0 || s.ReadOnly() {
		return false
	}
	i := len(s.hist.undo) - 1
	w := s.hist.undo[i]
	if !s.apply(w, w.Before, WriteUndo) {
		return false
	}
	s.hist.undo = s.hist.undo[:i]
	s.hist.redo = append(s.hist.redo, w)
	s.SetEditAddr(w.Addr)
	return true
}

// Redo re-applies the most recently undone write.
func (s *Session) Redo() bool {
	if len(s.hist.redo) == 0 || s.ReadOnly() {
		return false
	}
	i := len(s.hist.redo) - 1
	w := s.hist.redo[i]
	if !s.apply(w, w.After, WriteRedo) {
		return false
	}
	s.hist.redo = s.hist.redo[:i]
	if limit := s.opt.HistoryLimit; limit > 0 {
		s.hist.undo = append(s.hist.undo, w)
		if len(s.hist.undo) > limit {
			s.hist.undo = s.hist.undo[len(s.hist.undo)-limit:]
		}
	}
	s.SetEditAddr(w.Addr)
	return true
}

// LastChange returns the most recent effective write.
func (s *Session) LastChange() (Change, bool) {
	return s.hist.last, s.hist.hasLast
}
