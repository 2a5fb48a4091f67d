package hexview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexed/memory"
)

func TestNew_OpensCursorAtFirstByte(t *testing.T) {
	m := New(Config{Source: memory.Bytes([]byte{1, 2, 3})})
	if got := m.Session().EditAddr(); got != 0 {
		t.Fatalf("initial cursor: got %v, want 0", got)
	}
	if !m.Focused() {
		t.Fatalf("new model should be focused")
	}

	m = New(Config{})
	if m.Session().Editing() {
		t.Fatalf("empty source must stay idle")
	}
	if got := m.renderContent(); got != "" {
		t.Fatalf("empty source render: got %q", got)
	}
}

func TestNew_ForwardsSessionOptions(t *testing.T) {
	m := New(Config{
		Source:       memory.Bytes([]byte{1}),
		ReadOnly:     true,
		UTF8:         true,
		HistoryLimit: 5,
	})
	opt := m.Session().Options()
	if !opt.ReadOnly || !opt.UTF8 || opt.HistoryLimit != 5 {
		t.Fatalf("session options: got %+v", opt)
	}
	if len(m.Config().KeyMap.Up.Keys()) == 0 {
		t.Fatalf("zero key map should fall back to defaults")
	}
}

func TestSetSize_AutoFitsColumns(t *testing.T) {
	m := New(Config{
		Source:    memory.Bytes(make([]byte, 256)),
		MidCols:   8,
		ShowASCII: true,
	})

	// 2 address digits: 4 + 48 + 1 + 1 + 16.
	m = m.SetSize(70, 10)
	if got := m.ViewportState().Cols; got != 16 {
		t.Fatalf("cols at width 70: got %d, want 16", got)
	}
	if got := m.Session().Layout().Cols; got != 16 {
		t.Fatalf("session cols: got %d, want 16", got)
	}

	m = m.SetSize(69, 10)
	if got := m.ViewportState().Cols; got != 8 {
		t.Fatalf("cols at width 69: got %d, want 8", got)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	if got := m.ViewportState().Cols; got != 40 {
		t.Fatalf("cols at width 200: got %d, want 40", got)
	}
}

func TestSetSize_KeepsCursorVisible(t *testing.T) {
	m := New(Config{Source: memory.Bytes(make([]byte, 256)), Cols: 16})
	m = m.SetSize(80, 16)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})

	m = m.SetSize(80, 4)
	st := m.ViewportState()
	if row := 15; row < st.TopRow || row >= st.TopRow+st.VisibleRows {
		t.Fatalf("cursor row %d hidden after shrink: %+v", row, st)
	}
}

func TestSetSource_ResetsAndRescans(t *testing.T) {
	m := New(Config{Source: memory.Bytes([]byte("abab"))})
	m = m.SetSize(40, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(runes("ab"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Finder().Count() != 2 {
		t.Fatalf("matches before reload: got %d", m.Finder().Count())
	}

	m = m.SetSource(memory.Bytes([]byte("xxabxxabxxab")))
	if got := m.Session().EditAddr(); got != 0 {
		t.Fatalf("cursor after reload: got %v, want 0", got)
	}
	if m.Session().CanUndo() {
		t.Fatalf("history should reset on reload")
	}
	if m.Finder().Count() != 3 {
		t.Fatalf("matches after reload: got %d, want 3", m.Finder().Count())
	}
}

func TestFocusBlur(t *testing.T) {
	m := New(Config{Source: memory.Bytes([]byte{0})})
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("blurred model reports focus")
	}
	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("focused model reports blur")
	}
}
