package hexview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexed/memory"
	"github.com/iw2rmb/hexed/search"
)

func (m Model) openBar(kind barKind) (Model, tea.Cmd) {
	m.bar = kind
	m.nibble = -1
	m.status = ""
	switch kind {
	case barFind:
		m.input.Placeholder = "pattern"
		m.input.SetValue(m.finder.Input())
		if m.finder.PatternLen() > 0 {
			m.findMode = m.finder.Mode()
		}
	case barGoto:
		m.input.Placeholder = "hex address"
		m.input.SetValue("")
	}
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) closeBar() {
	m.bar = barNone
	m.input.Blur()
}

func (m Model) updateBar(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.closeBar()
		m.status = ""
		return m, nil
	case key.Matches(msg, km.Accept):
		if m.bar == barFind {
			return m.runFind()
		}
		m.runGoto()
		return m, nil
	case m.bar == barFind && key.Matches(msg, km.CycleMode):
		m.findMode = m.findMode.Next()
		return m, nil
	case m.bar == barFind && key.Matches(msg, km.ToggleTyped):
		m.findTyped = !m.findTyped
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) findOptions() search.Options {
	return search.Options{
		Typed: m.findTyped,
		Type:  m.cfg.PreviewType,
		Order: m.cfg.PreviewOrder,
	}
}

// runFind compiles the bar's pattern and jumps to the first match at or
// after the cursor. A bad pattern keeps the bar open.
func (m Model) runFind() (Model, tea.Cmd) {
	n, err := m.finder.Search(m.sess.Source(), m.input.Value(), m.findMode, m.findOptions())
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.closeBar()
	if n == 0 {
		m.setStatus(fmt.Sprintf("no %s matches", m.findMode), false)
		return m, nil
	}
	r := m.finder.Next(m.sess.EditAddr() - 1)
	m.jumpToMatch(r)
	return m, nil
}

// findStep moves to the next or previous match, wrapping at either end.
func (m Model) findStep(forward bool) (Model, tea.Cmd) {
	if m.finder.PatternLen() == 0 {
		return m.openBar(barFind)
	}
	var r search.Result
	if forward {
		r = m.finder.Next(m.sess.EditAddr())
	} else {
		r = m.finder.Prev(m.sess.EditAddr())
	}
	if !r.OK {
		m.setStatus(fmt.Sprintf("no %s matches", m.finder.Mode()), false)
		return m, nil
	}
	m.jumpToMatch(r)
	return m, nil
}

func (m *Model) jumpToMatch(r search.Result) {
	if !r.OK {
		return
	}
	m.nibble = -1
	end := r.Addr + memory.Addr(m.finder.PatternLen())
	m.scrollTo(m.sess.GotoAndHighlight(r.Addr, end))

	msg := fmt.Sprintf("match %d/%d at %s", m.finder.Index(r.Addr)+1, m.finder.Count(), m.displayAddr(r.Addr))
	if r.Wrapped {
		msg += " (wrapped)"
	}
	m.setStatus(msg, false)
}

// runGoto parses a hex display address and jumps to it.
func (m *Model) runGoto() {
	text := strings.TrimSpace(m.input.Value())
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	v, err := strconv.ParseUint(text, 16, 63)
	if err != nil {
		m.setStatus(fmt.Sprintf("invalid address %q", m.input.Value()), true)
		return
	}
	a := memory.Addr(int(v) - m.cfg.BaseAddr)
	if !a.Valid(m.sess.Size()) {
		m.setStatus(fmt.Sprintf("address %X out of range", v), true)
		return
	}
	m.closeBar()
	m.nibble = -1
	m.status = ""
	m.scrollTo(m.sess.Goto(a))
}

func (m Model) barPrompt() string {
	switch m.bar {
	case barFind:
		mode := m.findMode.String()
		if m.findTyped && m.findMode == search.ModeDecimal {
			mode = m.cfg.PreviewType.String()
		}
		return fmt.Sprintf("find (%s): ", mode)
	case barGoto:
		return "goto: "
	default:
		return ""
	}
}
