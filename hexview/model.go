package hexview

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexed/memory"
	"github.com/iw2rmb/hexed/search"
)

type barKind int

const (
	barNone barKind = iota
	barFind
	barGoto
)

// Model is a Bubble Tea component that renders and edits a memory.Source.
type Model struct {
	cfg    Config
	sess   *memory.Session
	finder *search.Engine

	focused bool

	// viewport frames the rendered rows; scrolling is tracked in topRow so
	// only visible rows are rendered.
	viewport viewport.Model
	topRow   int
	cols     int
	digits   int

	// nibble is the pending high nibble of a hex edit, or -1.
	nibble int

	bar       barKind
	input     textinput.Model
	findMode  search.Mode
	findTyped bool

	status    string
	statusErr bool

	mouseDragging bool
	mouseAnchor   memory.Addr

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)

	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 256

	m := Model{
		cfg: cfg,
		sess: memory.New(cfg.Source, memory.Options{
			ReadOnly:     cfg.ReadOnly,
			UTF8:         cfg.UTF8,
			HistoryLimit: cfg.HistoryLimit,
		}),
		finder:      search.NewEngine(),
		focused:     true,
		viewport:    viewport.New(0, 0),
		nibble:      -1,
		input:       in,
		mouseAnchor: memory.NoAddr,
	}
	m.sess.SetEditAddr(0)
	m.syncLayout()
	m.lastVersion = m.sess.Version()
	return m
}

// Session returns the navigation, selection and edit state.
func (m Model) Session() *memory.Session { return m.sess }

// Finder returns the search engine bound to this view.
func (m Model) Finder() *search.Engine { return m.finder }

func (m Model) Config() Config { return m.cfg }

func (m Model) Init() tea.Cmd { return nil }

// SetSource replaces the viewed data. Cursor, selection, history and search
// matches are reset; the last pattern is rescanned against the new data.
func (m Model) SetSource(src memory.Source) Model {
	m.cfg.Source = src
	m.sess.SetSource(src)
	m.sess.SetEditAddr(0)
	m.finder.Rescan(src)
	m.nibble = -1
	m.mouseDragging = false
	m.topRow = 0
	m.syncLayout()
	m.emitChange()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.syncLayout()
	m.revealEdit()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.nibble = -1
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.bar != barNone {
			m.input, cmd = m.input.Update(msg)
		}
	}
	// Hosts may mutate the session directly; keep geometry current.
	m.syncLayout()
	m.emitChange()
	return m, cmd
}

func (m Model) View() string {
	m.viewport.SetContent(m.renderContent())
	return m.viewport.View()
}

// footerRows returns how many rows below the data are in use.
func (m Model) footerRows() int {
	n := 0
	if m.cfg.ShowPreview {
		n++
	}
	if m.bar != barNone || m.status != "" {
		n++
	}
	return n
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize() - m.footerRows()
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) geometry() rowGeometry {
	return rowGeometry{
		digits:   m.digits,
		cols:     m.cols,
		midCols:  m.cfg.MidCols,
		showText: m.cfg.ShowASCII,
	}
}

// syncLayout recomputes columns and clamps the first visible row, then
// hands the geometry to the session.
func (m *Model) syncLayout() {
	size := m.sess.Size()
	m.digits = m.cfg.AddrDigits
	if m.digits == 0 {
		m.digits = addrDigits(m.cfg.BaseAddr, size)
	}

	m.cols = m.cfg.Cols
	if m.cols == 0 {
		w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
		if w <= 0 {
			m.cols = 16
		} else {
			m.cols = fitCols(w, m.digits, m.cfg.MidCols, m.cfg.ShowASCII)
		}
	}

	rows := m.visibleRowCount()
	total := memory.NewGrid(m.cols).RowCount(size)
	m.topRow = clampInt(m.topRow, 0, maxInt(total-rows, 0))

	m.sess.SetLayout(memory.Layout{
		Cols:        m.cols,
		PageRows:    rows,
		TopRow:      m.topRow,
		VisibleRows: rows,
	})
}

func (m *Model) scrollTo(req memory.ScrollRequest, ok bool) {
	if !ok {
		return
	}
	m.topRow = req.TopRow
	m.syncLayout()
}

// revealEdit scrolls the edit address into view after a geometry change.
func (m *Model) revealEdit() {
	a := m.sess.EditAddr()
	if a == memory.NoAddr {
		return
	}
	rows := m.visibleRowCount()
	if rows <= 0 {
		return
	}
	row := m.sess.Grid().Row(a)
	switch {
	case row < m.topRow:
		m.topRow = row
	case row >= m.topRow+rows:
		m.topRow = row - rows + 1
	default:
		return
	}
	m.syncLayout()
}

func (m *Model) emitChange() {
	ver := m.sess.Version()
	if ver == m.lastVersion {
		return
	}
	since := m.lastVersion
	m.lastVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess, since))
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
