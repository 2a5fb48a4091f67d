package hexview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the hex view key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding

	Home, End           key.Binding
	ShiftHome, ShiftEnd key.Binding

	DataStart, DataEnd           key.Binding
	ShiftDataStart, ShiftDataEnd key.Binding

	PageUp, PageDown           key.Binding
	ShiftPageUp, ShiftPageDown key.Binding

	SelectAll key.Binding
	Copy      key.Binding
	// Paste writes hex bytes from the clipboard starting at the cursor.
	Paste  key.Binding
	Cancel key.Binding

	Undo, Redo key.Binding

	Find, FindNext, FindPrev key.Binding
	// CycleMode switches the find bar between hex, decimal and text.
	CycleMode key.Binding
	// ToggleTyped makes decimal patterns a single value of the preview type.
	ToggleTyped key.Binding
	Goto        key.Binding
	Accept      key.Binding

	ToggleUTF8 key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to row start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to row end")),

		DataStart:      key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "first byte")),
		DataEnd:        key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "last byte")),
		ShiftDataStart: key.NewBinding(key.WithKeys("ctrl+shift+home"), key.WithHelp("ctrl+shift+home", "select to first byte")),
		ShiftDataEnd:   key.NewBinding(key.WithKeys("ctrl+shift+end"), key.WithHelp("ctrl+shift+end", "select to last byte")),

		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		ShiftPageUp:   key.NewBinding(key.WithKeys("shift+pgup"), key.WithHelp("shift+pgup", "select page up")),
		ShiftPageDown: key.NewBinding(key.WithKeys("shift+pgdown"), key.WithHelp("shift+pgdown", "select page down")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste hex")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Find: key.NewBinding(key.WithKeys("ctrl+f", "/"), key.WithHelp("ctrl+f", "find")),
		// Portable: not every terminal reports shift+f3.
		FindNext:    key.NewBinding(key.WithKeys("f3", "ctrl+n"), key.WithHelp("f3", "next match")),
		FindPrev:    key.NewBinding(key.WithKeys("shift+f3", "ctrl+p"), key.WithHelp("shift+f3", "previous match")),
		CycleMode:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "search mode")),
		ToggleTyped: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "typed value")),
		Goto:        key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "go to address")),
		Accept:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),

		ToggleUTF8: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "utf-8 mode")),
	}
}
