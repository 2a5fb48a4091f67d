package hexview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hexed/internal/glyph"
	"github.com/iw2rmb/hexed/memory"
)

// cellKind is the visual state of one byte, in decreasing priority.
type cellKind int

const (
	cellPlain cellKind = iota
	cellZero
	cellColored
	cellHighlight
	cellMatch
	cellSelected
	cellCursor
)

// rowState is the per-render data shared by every row.
type rowState struct {
	geo     rowGeometry
	grid    memory.Grid
	size    int
	edit    memory.Addr
	sel     memory.Range
	selOK   bool
	first   memory.Addr
	matched []bool
}

func (m Model) renderContent() string {
	rows := m.visibleRowCount()
	out := make([]string, 0, rows+2)
	if rows > 0 {
		out = append(out, m.renderRows(rows)...)
	}
	if m.footerRows() > 0 {
		for len(out) < rows {
			out = append(out, "")
		}
	}
	if m.cfg.ShowPreview {
		out = append(out, m.renderPreview())
	}
	if line, ok := m.renderStatus(); ok {
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m Model) renderRows(rows int) []string {
	size := m.sess.Size()
	grid := memory.NewGrid(m.cols)
	first, last := grid.Visible(m.topRow, rows, size)
	if first == memory.NoAddr {
		return nil
	}

	st := rowState{
		geo:     m.geometry(),
		grid:    grid,
		size:    size,
		edit:    m.sess.EditAddr(),
		first:   first,
		matched: m.matchCoverage(first, last),
	}
	if !m.focused {
		st.edit = memory.NoAddr
	}
	st.sel, st.selOK = m.sess.Selection()

	lastRow := grid.Row(last)
	out := make([]string, 0, lastRow-m.topRow+1)
	for row := m.topRow; row <= lastRow; row++ {
		out = append(out, m.renderRow(st, row))
	}
	return out
}

// matchCoverage marks the visible addresses covered by a search match.
func (m Model) matchCoverage(first, last memory.Addr) []bool {
	win := m.finder.Window(first, last)
	if len(win) == 0 {
		return nil
	}
	n := memory.Addr(m.finder.PatternLen())
	cov := make([]bool, last-first+1)
	for _, start := range win {
		for a := start; a < start+n && a <= last; a++ {
			if a >= first {
				cov[a-first] = true
			}
		}
	}
	return cov
}

func (m Model) renderRow(st rowState, row int) string {
	start := st.grid.RowStart(row)
	end := st.grid.RowEnd(row, st.size)

	var sb strings.Builder

	addrStyle := m.cfg.Style.Addr
	if st.edit != memory.NoAddr && st.edit >= start && st.edit <= end {
		addrStyle = m.cfg.Style.AddrActive
	}
	sb.WriteString(addrStyle.Render(m.formatAddr(start) + ":"))
	sb.WriteByte(' ')

	for col := 0; col < st.geo.cols; col++ {
		if st.geo.midCols > 0 && col > 0 && col%st.geo.midCols == 0 {
			sb.WriteByte(' ')
		}
		a := start + memory.Addr(col)
		if a > end {
			sb.WriteString("   ")
			continue
		}
		kind := m.kindAt(st, a)
		b := m.sess.Read(a)
		text, dim := m.hexText(b)
		if kind == cellCursor && m.nibble >= 0 {
			text = m.pendingText()
		}
		if kind == cellPlain && dim {
			kind = cellZero
		}
		sb.WriteString(m.styleFor(kind, a).Render(text))

		sep := " "
		if col+1 < st.geo.cols && a < end {
			if next := m.kindAt(st, a+1); next == kind && joinable(kind) &&
				!(st.geo.midCols > 0 && (col+1)%st.geo.midCols == 0) {
				sep = m.styleFor(kind, a).Render(" ")
			}
		}
		sb.WriteString(sep)
	}

	if st.geo.showText {
		sb.WriteByte(' ')
		if m.sess.UTF8() {
			m.renderUTF8Text(&sb, st, start, end)
		} else {
			for a := start; a <= end; a++ {
				sb.WriteString(m.textStyleFor(m.kindAt(st, a), a).Render(glyph.ASCII(m.sess.Read(a))))
			}
		}
	}
	return sb.String()
}

// renderUTF8Text draws one cell per byte: a code point fills the cells of
// all its bytes, and bytes continuing a span from the previous row are
// blank.
func (m Model) renderUTF8Text(sb *strings.Builder, st rowState, start, end memory.Addr) {
	for a := start; a <= end; {
		spanStart, n := m.sess.Span(a)
		if spanStart < a {
			sb.WriteString(m.textStyleFor(m.kindAt(st, a), a).Render(" "))
			a++
			continue
		}
		cells := n
		if rest := int(end-a) + 1; cells > rest {
			cells = rest
		}
		text := string(glyph.Placeholder)
		if r, l := m.sess.DecodeAt(a); l > 0 {
			text = glyph.Cell(r, cells)
		}
		kind := m.kindAt(st, a)
		for i := 1; i < cells; i++ {
			if k := m.kindAt(st, a+memory.Addr(i)); k > kind {
				kind = k
			}
		}
		sb.WriteString(m.textStyleFor(kind, a).Render(text))
		a += memory.Addr(cells)
	}
}

func (m Model) kindAt(st rowState, a memory.Addr) cellKind {
	switch {
	case a == st.edit:
		return cellCursor
	case st.selOK && st.sel.Contains(a):
		return cellSelected
	case st.matched != nil && st.matched[a-st.first]:
		return cellMatch
	case m.sess.Highlighted(a):
		return cellHighlight
	}
	if _, ok := m.sess.Source().BgColor(a); ok {
		return cellColored
	}
	return cellPlain
}

func joinable(k cellKind) bool {
	return k == cellSelected || k == cellMatch || k == cellHighlight
}

func (m Model) styleFor(k cellKind, a memory.Addr) lipgloss.Style {
	st := m.cfg.Style
	switch k {
	case cellCursor:
		return st.Cursor
	case cellSelected:
		return st.Selection
	case cellMatch:
		return st.Match
	case cellHighlight:
		return st.Highlight
	case cellColored:
		c, _ := m.sess.Source().BgColor(a)
		return st.Byte.Background(lipgloss.Color(c.Hex()))
	case cellZero:
		return st.Zero
	default:
		return st.Byte
	}
}

func (m Model) textStyleFor(k cellKind, a memory.Addr) lipgloss.Style {
	if k == cellPlain || k == cellZero {
		return m.cfg.Style.Text
	}
	return m.styleFor(k, a)
}

// hexText returns the two cells shown for b and whether it is greyed out.
func (m Model) hexText(b byte) (string, bool) {
	if m.cfg.HexII {
		switch {
		case b >= 32 && b < 127:
			return "." + string(rune(b)), false
		case b == 0xFF && m.cfg.GreyOutZeroes:
			return "##", true
		case b == 0x00:
			return "  ", false
		}
	}
	if m.cfg.LowercaseHex {
		return fmt.Sprintf("%02x", b), b == 0 && m.cfg.GreyOutZeroes
	}
	return fmt.Sprintf("%02X", b), b == 0 && m.cfg.GreyOutZeroes
}

func (m Model) pendingText() string {
	if m.cfg.LowercaseHex {
		return fmt.Sprintf("%x_", m.nibble)
	}
	return fmt.Sprintf("%X_", m.nibble)
}

func (m Model) formatAddr(a memory.Addr) string {
	if m.cfg.LowercaseHex {
		return fmt.Sprintf("%0*x", m.digits, m.cfg.BaseAddr+int(a))
	}
	return fmt.Sprintf("%0*X", m.digits, m.cfg.BaseAddr+int(a))
}

// renderPreview describes the value at the preview address and the
// selection extent.
func (m Model) renderPreview() string {
	t, order, f := m.cfg.PreviewType, m.cfg.PreviewOrder, m.cfg.PreviewFormat
	parts := make([]string, 0, 3)
	if v, ok := m.sess.Preview(t, order, f); ok {
		parts = append(parts, fmt.Sprintf("%s %s %s @%s: %s",
			t, memory.OrderName(order), f, m.formatAddr(m.sess.PreviewAddr()), v))
	}
	if r, ok := m.sess.Selection(); ok {
		parts = append(parts, fmt.Sprintf("sel %s-%s (%d bytes)", m.formatAddr(r.Start), m.formatAddr(r.End), r.Len()))
	}
	if m.sess.UTF8() {
		parts = append(parts, "utf-8")
	}
	line := strings.Join(parts, "  ")
	return m.cfg.Style.Preview.Render(m.fit(line))
}

func (m Model) renderStatus() (string, bool) {
	if m.bar != barNone {
		return m.cfg.Style.Prompt.Render(m.barPrompt()) + m.input.View(), true
	}
	if m.status == "" {
		return "", false
	}
	st := m.cfg.Style.Status
	if m.statusErr {
		st = m.cfg.Style.Error
	}
	return st.Render(m.fit(m.status)), true
}

func (m Model) fit(s string) string {
	if m.viewport.Width <= 0 {
		return s
	}
	return glyph.Fit(s, m.viewport.Width)
}
