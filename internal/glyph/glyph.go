// Package glyph renders decoded bytes and code points as terminal cells.
package glyph

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Placeholder stands in for anything that cannot be shown in its cells.
const Placeholder = '.'

// Width returns the terminal cell width of r. Zero-width results from
// runewidth fall back to the grapheme width reported by uniseg.
func Width(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	return w
}

// Printable reports whether r can be drawn on its own in a text column.
func Printable(r rune) bool {
	if r == unicode.ReplacementChar || r == 0 {
		return false
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
		return false
	}
	if r == ' ' {
		return true
	}
	return unicode.IsGraphic(r) && !unicode.IsSpace(r)
}

// ASCII returns the single cell shown for b in an ASCII text column.
func ASCII(b byte) string {
	if b >= 32 && b < 127 {
		return string(rune(b))
	}
	return string(Placeholder)
}

// Cell renders r into exactly cells terminal cells. A code point that is not
// printable, or too wide for the cells it owns, renders as the placeholder.
// The remainder is padded with spaces.
func Cell(r rune, cells int) string {
	if cells <= 0 {
		return ""
	}
	w := Width(r)
	if !Printable(r) || w == 0 || w > cells {
		return string(Placeholder) + strings.Repeat(" ", cells-1)
	}
	return string(r) + strings.Repeat(" ", cells-w)
}

// Fit pads or truncates s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
