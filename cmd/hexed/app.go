package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/iw2rmb/hexed/hexview"
	"github.com/iw2rmb/hexed/memory"
)

type appKeys struct {
	Save, Reload, Quit key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// fileState is shared with the view's change callback.
type fileState struct {
	dirty bool
}

type model struct {
	path  string
	data  []byte
	state *fileState
	keys  appKeys

	view   hexview.Model
	header lipgloss.Style
	notice string
}

func newModel(path string, data []byte, cfg hexview.Config) model {
	st := &fileState{}
	cfg.Source = memory.Bytes(data)
	cfg.OnChange = func(ev hexview.ChangeEvent) {
		if ev.HasWrite {
			st.dirty = true
		}
	}
	return model{
		path:   path,
		data:   data,
		state:  st,
		keys:   defaultAppKeys(),
		view:   hexview.New(cfg),
		header: lipgloss.NewStyle().Bold(true),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view = m.view.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reload(true)
			return m, nil
		}
	case fileChangedMsg:
		m.reload(false)
		return m, nil
	case watchErrMsg:
		m.notice = "watch: " + msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.headerLine() + "\n" + m.view.View()
}

func (m model) headerLine() string {
	s := fmt.Sprintf("%s  %d bytes", m.path, len(m.data))
	if m.view.Session().ReadOnly() {
		s += "  [read-only]"
	}
	if m.state.dirty {
		s += "  [modified]"
	}
	if m.notice != "" {
		s += "  " + m.notice
	}
	return m.header.Render(s)
}

func (m *model) save() {
	if !m.state.dirty {
		m.notice = "no changes"
		return
	}
	if err := writeFile(m.path, m.data); err != nil {
		log.Printf("save: %v", err)
		m.notice = err.Error()
		return
	}
	log.Printf("saved %s (%d bytes)", m.path, len(m.data))
	m.state.dirty = false
	m.notice = "saved"
}

// reload rereads the file. Pending edits are kept unless force is set.
func (m *model) reload(force bool) {
	data, err := readFile(m.path)
	if err != nil {
		log.Printf("reload: %v", err)
		m.notice = err.Error()
		return
	}
	if bytes.Equal(data, m.data) {
		return
	}
	if m.state.dirty && !force {
		m.notice = "changed on disk, ctrl+r to reload"
		return
	}
	log.Printf("reloaded %s (%d bytes)", m.path, len(data))
	m.data = data
	m.view = m.view.SetSource(memory.Bytes(data))
	m.state.dirty = false
	m.notice = "reloaded"
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
