package hexview

import "github.com/iw2rmb/hexed/memory"

type ChangeEvent struct {
	Version  uint64
	EditAddr memory.Addr
	Selection struct {
		Range  memory.Range
		Active bool
	}

	// Write is set when a byte write, undo or redo happened during the
	// update that produced this event.
	Write    memory.Change
	HasWrite bool
}

func buildChangeEvent(s *memory.Session, since uint64) ChangeEvent {
	ev := ChangeEvent{
		Version:  s.Version(),
		EditAddr: s.EditAddr(),
	}
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if c, ok := s.LastChange(); ok && c.VersionAfter > since {
		ev.Write = c
		ev.HasWrite = true
	}
	return ev
}
