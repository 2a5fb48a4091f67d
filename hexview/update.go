package hexview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexed/memory"
	"github.com/iw2rmb/hexed/search"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.bar != barNone {
		return m.updateBar(msg)
	}

	if mv, ok := m.moveFor(msg); ok {
		m.nibble = -1
		m.status = ""
		if !m.sess.Editing() && mv.Cmd != memory.CmdSelectAll {
			m.reopenEdit()
		}
		m.scrollTo(m.sess.Apply(mv))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Paste):
		m.pasteHex()

	case key.Matches(msg, km.Undo):
		if m.sess.Undo() {
			m.afterWrite()
		}
	case key.Matches(msg, km.Redo):
		if m.sess.Redo() {
			m.afterWrite()
		}

	case key.Matches(msg, km.Find):
		return m.openBar(barFind)
	case key.Matches(msg, km.FindNext):
		return m.findStep(true)
	case key.Matches(msg, km.FindPrev):
		return m.findStep(false)
	case key.Matches(msg, km.Goto):
		return m.openBar(barGoto)

	case key.Matches(msg, km.ToggleUTF8):
		m.sess.SetUTF8(!m.sess.UTF8())
		if m.sess.UTF8() {
			m.setStatus("utf-8 text column", false)
		} else {
			m.setStatus("ascii text column", false)
		}

	case key.Matches(msg, km.Cancel):
		m.cancel()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt && !msg.Paste {
			m.typeNibble(msg.Runes[0])
		}
	}

	return m, nil
}

// moveFor maps a key to a navigation command.
func (m Model) moveFor(msg tea.KeyMsg) (memory.Move, bool) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		return memory.Move{Cmd: memory.CmdLeft}, true
	case key.Matches(msg, km.Right):
		return memory.Move{Cmd: memory.CmdRight}, true
	case key.Matches(msg, km.Up):
		return memory.Move{Cmd: memory.CmdUp}, true
	case key.Matches(msg, km.Down):
		return memory.Move{Cmd: memory.CmdDown}, true

	case key.Matches(msg, km.ShiftLeft):
		return memory.Move{Cmd: memory.CmdLeft, Shift: true}, true
	case key.Matches(msg, km.ShiftRight):
		return memory.Move{Cmd: memory.CmdRight, Shift: true}, true
	case key.Matches(msg, km.ShiftUp):
		return memory.Move{Cmd: memory.CmdUp, Shift: true}, true
	case key.Matches(msg, km.ShiftDown):
		return memory.Move{Cmd: memory.CmdDown, Shift: true}, true

	case key.Matches(msg, km.Home):
		return memory.Move{Cmd: memory.CmdHome}, true
	case key.Matches(msg, km.End):
		return memory.Move{Cmd: memory.CmdEnd}, true
	case key.Matches(msg, km.ShiftHome):
		return memory.Move{Cmd: memory.CmdHome, Shift: true}, true
	case key.Matches(msg, km.ShiftEnd):
		return memory.Move{Cmd: memory.CmdEnd, Shift: true}, true

	case key.Matches(msg, km.DataStart):
		return memory.Move{Cmd: memory.CmdHome, Jump: true}, true
	case key.Matches(msg, km.DataEnd):
		return memory.Move{Cmd: memory.CmdEnd, Jump: true}, true
	case key.Matches(msg, km.ShiftDataStart):
		return memory.Move{Cmd: memory.CmdHome, Jump: true, Shift: true}, true
	case key.Matches(msg, km.ShiftDataEnd):
		return memory.Move{Cmd: memory.CmdEnd, Jump: true, Shift: true}, true

	case key.Matches(msg, km.PageUp):
		return memory.Move{Cmd: memory.CmdPageUp}, true
	case key.Matches(msg, km.PageDown):
		return memory.Move{Cmd: memory.CmdPageDown}, true
	case key.Matches(msg, km.ShiftPageUp):
		return memory.Move{Cmd: memory.CmdPageUp, Shift: true}, true
	case key.Matches(msg, km.ShiftPageDown):
		return memory.Move{Cmd: memory.CmdPageDown, Shift: true}, true

	case key.Matches(msg, km.SelectAll):
		return memory.Move{Cmd: memory.CmdSelectAll}, true
	}
	return memory.Move{}, false
}

// reopenEdit puts the cursor back after Cancel closed it: on the preview
// address when there is one, else on the first visible byte.
func (m *Model) reopenEdit() {
	a := m.sess.PreviewAddr()
	if a == memory.NoAddr {
		a = m.sess.Grid().RowStart(m.topRow)
	}
	m.sess.SetEditAddr(a)
}

func (m *Model) cancel() {
	switch {
	case m.nibble >= 0:
		m.nibble = -1
	case m.sess.HasSelection():
		m.sess.MoveTo(m.sess.EditAddr())
	case m.status != "":
		m.status = ""
	default:
		m.sess.CloseEdit()
	}
}

// typeNibble feeds one hex digit into the byte under the cursor. The second
// digit commits the byte and advances the cursor.
func (m *Model) typeNibble(r rune) {
	v, ok := nibbleValue(r)
	if !ok {
		return
	}
	a := m.sess.EditAddr()
	if a == memory.NoAddr {
		return
	}
	if m.sess.ReadOnly() {
		m.setStatus("read-only", true)
		return
	}
	if m.nibble < 0 {
		m.nibble = int(v)
		return
	}
	b := byte(m.nibble)<<4 | v
	m.nibble = -1
	if !m.sess.SetByte(a, b) {
		m.setStatus(fmt.Sprintf("write to %s failed", m.displayAddr(a)), true)
		return
	}
	m.status = ""
	m.afterWrite()
	m.scrollTo(m.sess.Apply(memory.Move{Cmd: memory.CmdRight}))
}

// afterWrite keeps the match set and viewport in step with a changed byte.
func (m *Model) afterWrite() {
	m.nibble = -1
	if m.finder.PatternLen() > 0 {
		m.finder.Rescan(m.sess.Source())
	}
	m.revealEdit()
}

func nibbleValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, ok := m.sess.CopyAs(m.cfg.CopyFormat, m.cfg.CopyOptions)
	if !ok || s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.setStatus("copy failed: "+err.Error(), true)
		return
	}
	r, _ := m.sess.Selection()
	m.setStatus(fmt.Sprintf("copied %d bytes as %s", r.Len(), m.cfg.CopyFormat), false)
}

// pasteHex parses the clipboard as hex bytes and writes them from the
// cursor on. Bytes past the end of the data are dropped.
func (m *Model) pasteHex() {
	if m.cfg.Clipboard == nil || !m.sess.Editing() {
		return
	}
	if m.sess.ReadOnly() {
		m.setStatus("read-only", true)
		return
	}
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.setStatus("paste failed: "+err.Error(), true)
		return
	}
	p, err := search.Compile(text, search.ModeHex, search.Options{})
	if err != nil {
		m.setStatus("paste: "+err.Error(), true)
		return
	}

	start := m.sess.EditAddr()
	size := m.sess.Size()
	n := 0
	for i, b := range p {
		a := start + memory.Addr(i)
		if !a.Valid(size) || !m.sess.SetByte(a, b) {
			break
		}
		n++
	}
	if n == 0 {
		return
	}
	m.sess.ClearSelection()
	next := start + memory.Addr(n)
	if !next.Valid(size) {
		next = memory.Addr(size - 1)
	}
	m.sess.SetEditAddr(next)
	m.afterWrite()
	m.setStatus(fmt.Sprintf("pasted %d bytes", n), false)
}

func (m Model) displayAddr(a memory.Addr) string {
	return fmt.Sprintf("%0*X", m.digits, m.cfg.BaseAddr+int(a))
}
