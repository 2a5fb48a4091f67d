package hexview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexed/memory"
)

// wheelRows is how many rows one wheel notch scrolls.
const wheelRows = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if isManualScrollMouse(msg) {
		if m.cfg.ScrollPolicy == ScrollAllowManual {
			switch msg.Button { //nolint:exhaustive
			case tea.MouseButtonWheelUp:
				m.topRow -= wheelRows
			case tea.MouseButtonWheelDown:
				m.topRow += wheelRows
			}
			m.syncLayout()
		}
		return m, nil
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.mouseInRows(msg.X, msg.Y) {
			return m, nil
		}
		a := m.AddrAt(msg.X, msg.Y)
		if a == memory.NoAddr {
			return m, nil
		}
		m.nibble = -1
		if msg.Shift {
			anchor := m.sess.EditAddr()
			if r, ok := m.sess.Selection(); ok {
				anchor = r.Start
				if a < r.Start {
					anchor = r.End
				}
			}
			if anchor == memory.NoAddr {
				anchor = a
			}
			m.mouseAnchor = anchor
			m.sess.SetEditAddr(a)
			m.sess.SetAnchor(anchor)
			m.sess.SetSelection(anchor, a)
		} else {
			m.mouseAnchor = a
			m.sess.MoveTo(a)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToRows(msg.X, msg.Y)
		a := m.AddrAt(x, y)
		if a == memory.NoAddr {
			a = memory.Addr(m.sess.Size() - 1)
		}
		m.sess.SetEditAddr(a)
		m.sess.SetAnchor(m.mouseAnchor)
		m.sess.SetSelection(m.mouseAnchor, a)

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInRows(x, y int) bool {
	rows := m.visibleRowCount()
	if m.viewport.Width <= 0 || rows <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < rows
}

func (m Model) clampMouseToRows(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if rows := m.visibleRowCount(); rows > 0 {
		y = clampInt(y, 0, rows-1)
	}
	return x, y
}
