package hexview

import (
	"encoding/binary"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/hexed/memory"
)

func TestRender_RowLayoutWithMidCols(t *testing.T) {
	m := New(Config{
		Source:    memory.Bytes([]byte("AB\x00\x01xy")),
		Cols:      4,
		MidCols:   2,
		ShowASCII: true,
	})
	m = m.Blur()
	m = m.SetSize(40, 5)

	got := strings.Split(m.renderContent(), "\n")
	want := []string{
		"0: 41 42  00 01  AB..",
		"4: 78 79         xy",
	}
	if len(got) != len(want) {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d:\n got: %q\nwant: %q", i, got[i], want[i])
		}
	}
}

func TestRender_AddressDigitsAndBase(t *testing.T) {
	m := New(Config{
		Source:       memory.Bytes(make([]byte, 32)),
		Cols:         16,
		BaseAddr:     0x1000,
		LowercaseHex: true,
	})
	m = m.Blur()
	m = m.SetSize(80, 2)

	lines := strings.Split(m.renderContent(), "\n")
	if !strings.HasPrefix(lines[0], "1000: ") || !strings.HasPrefix(lines[1], "1010: ") {
		t.Fatalf("address column: got %q", lines)
	}

	m = New(Config{Source: memory.Bytes(make([]byte, 32)), Cols: 16, AddrDigits: 8})
	m = m.SetSize(80, 2)
	if line := strings.Split(m.renderContent(), "\n")[1]; !strings.HasPrefix(line, "00000010: ") {
		t.Fatalf("fixed digits: got %q", line)
	}
}

func TestRender_HexIIAndGreyZeroes(t *testing.T) {
	src := memory.Bytes([]byte{0x41, 0x00, 0xFF, 0x10})

	m := New(Config{Source: src, Cols: 4, HexII: true, GreyOutZeroes: true})
	m = m.Blur()
	m = m.SetSize(40, 1)
	if got, want := m.renderContent(), "0: .A    ## 10 "; got != want {
		t.Fatalf("hexii:\n got: %q\nwant: %q", got, want)
	}

	m = New(Config{Source: src, Cols: 4, HexII: true})
	m = m.Blur()
	m = m.SetSize(40, 1)
	if got, want := m.renderContent(), "0: .A    FF 10 "; got != want {
		t.Fatalf("hexii without grey-out:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_GreyOutZeroesUsesZeroStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	zero := r.NewStyle().Foreground(lipgloss.Color("#808080"))

	m := New(Config{
		Source:        memory.Bytes([]byte{0x00, 0x07}),
		Cols:          2,
		GreyOutZeroes: true,
		Style:         Style{Zero: zero},
	})
	m = m.Blur()
	m = m.SetSize(40, 1)

	want := "0: " + zero.Render("00") + " 07 "
	if got := m.renderContent(); got != want {
		t.Fatalf("grey zero:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAndSelection(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	cur := r.NewStyle().Reverse(true)
	sel := r.NewStyle().Underline(true)

	m := New(Config{
		Source:    memory.Bytes([]byte("ABC")),
		Cols:      3,
		ShowASCII: true,
		Style:     Style{Cursor: cur, Selection: sel},
	})
	m = m.SetSize(40, 1)

	want := "0: " + cur.Render("41") + " 42 43  " + cur.Render("A") + "BC"
	if got := m.renderContent(); got != want {
		t.Fatalf("cursor:\n got: %q\nwant: %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	want = "0: " + sel.Render("41") + sel.Render(" ") + sel.Render("42") + " " + cur.Render("43") + "  " +
		sel.Render("A") + sel.Render("B") + cur.Render("C")
	if got := m.renderContent(); got != want {
		t.Fatalf("selection:\n got: %q\nwant: %q", got, want)
	}

	m = m.Blur()
	want = "0: " + sel.Render("41") + sel.Render(" ") + sel.Render("42") + sel.Render(" ") + sel.Render("43") + "  " +
		sel.Render("A") + sel.Render("B") + sel.Render("C")
	if got := m.renderContent(); got != want {
		t.Fatalf("blurred selection:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_PendingNibble(t *testing.T) {
	m := New(Config{Source: memory.Bytes([]byte{0x00, 0x00}), Cols: 2})
	m = m.SetSize(40, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	if got, want := m.renderContent(), "0: A_ 00 "; got != want {
		t.Fatalf("pending nibble:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_SourceBackgroundColor(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	base := r.NewStyle()

	src := memory.Bytes([]byte{0x01, 0x02})
	src.BgColorFn = func(a memory.Addr) memory.Color {
		if a == 1 {
			return memory.RGBA(0xff, 0x00, 0x00, 0xff)
		}
		return 0
	}
	m := New(Config{Source: src, Cols: 2, Style: Style{Byte: base}})
	m = m.Blur()
	m = m.SetSize(40, 1)

	want := "0: " + base.Render("01") + " " + base.Background(lipgloss.Color("#ff0000")).Render("02") + " "
	if got := m.renderContent(); got != want {
		t.Fatalf("bg colour:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_UTF8TextColumn(t *testing.T) {
	// "A", DEVANAGARI KA (3 bytes), "B", a stray continuation byte.
	data := []byte{0x41, 0xE0, 0xA4, 0x95, 0x42, 0x80}
	m := New(Config{
		Source:    memory.Bytes(data),
		Cols:      6,
		ShowASCII: true,
		UTF8:      true,
	})
	m = m.SetSize(60, 3)

	row := strings.Split(m.renderContent(), "\n")[0]
	if want := "  Aक  B."; !strings.HasSuffix(row, want) {
		t.Fatalf("utf-8 column: got %q, want suffix %q", row, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.Session().UTF8() {
		t.Fatalf("ctrl+u should leave utf-8 mode")
	}
	row = strings.Split(m.renderContent(), "\n")[0]
	if want := "  A...B."; !strings.HasSuffix(row, want) {
		t.Fatalf("ascii column after toggle: got %q, want suffix %q", row, want)
	}
}

func TestRender_UTF8SpanAcrossRows(t *testing.T) {
	data := []byte{0x41, 0xE0, 0xA4, 0x95}
	m := New(Config{Source: memory.Bytes(data), Cols: 2, ShowASCII: true, UTF8: true})
	m = m.Blur()
	m = m.SetSize(40, 2)

	lines := strings.Split(m.renderContent(), "\n")
	if want := "0: 41 E0  Aक"; lines[0] != want {
		t.Fatalf("row 0: got %q, want %q", lines[0], want)
	}
	if want := "2: A4 95    "; lines[1] != want {
		t.Fatalf("row 1: got %q, want %q", lines[1], want)
	}
}

func TestRender_PreviewLine(t *testing.T) {
	m := New(Config{
		Source:        memory.Bytes([]byte{0x01, 0x00, 0x00, 0x00, 0xff}),
		Cols:          8,
		ShowPreview:   true,
		PreviewType:   memory.Int32,
		PreviewOrder:  binary.LittleEndian,
		PreviewFormat: memory.FormatDec,
	})
	m = m.SetSize(60, 3)

	lines := strings.Split(m.renderContent(), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, want 3 (%q)", len(lines), lines)
	}
	if lines[1] != "" {
		t.Fatalf("padding row: got %q", lines[1])
	}
	if want := "int32 LE dec @0: 1"; !strings.HasPrefix(lines[2], want) {
		t.Fatalf("preview: got %q, want prefix %q", lines[2], want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	lines = strings.Split(m.renderContent(), "\n")
	if want := "int32 LE dec @1: -16777216  sel 0-1 (2 bytes)"; !strings.HasPrefix(lines[2], want) {
		t.Fatalf("preview with selection: got %q, want prefix %q", lines[2], want)
	}
}

func TestRender_OnlyVisibleRows(t *testing.T) {
	m := New(Config{Source: memory.Bytes(make([]byte, 1<<20)), Cols: 16})
	m = m.SetSize(80, 3)

	lines := strings.Split(m.renderContent(), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered rows: got %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "00020: ") {
		t.Fatalf("third row: got %q", lines[2])
	}
}
