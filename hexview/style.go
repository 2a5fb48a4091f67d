package hexview

import "github.com/charmbracelet/lipgloss"

// Style controls the hex view's rendering.
type Style struct {
	Addr       lipgloss.Style
	AddrActive lipgloss.Style

	Byte lipgloss.Style
	// Zero renders greyed-out zero bytes (and 0xFF in HexII mode).
	Zero lipgloss.Style
	Text lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Highlight lipgloss.Style
	Match     lipgloss.Style

	Preview lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Addr:       gutter,
		AddrActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Byte:       lipgloss.NewStyle(),
		Zero:       gutter,
		Text:       lipgloss.NewStyle(),
		Selection:  lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Highlight:  lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Match:      lipgloss.NewStyle().Background(lipgloss.Color("58")),
		Preview:    gutter,
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
}
