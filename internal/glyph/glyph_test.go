package glyph

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWidth(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{r: 'a', want: 1},
		{r: 'क', want: 1},
		{r: '世', want: 2},
		{r: '😀', want: 2},
	}
	for _, tc := range cases {
		if got := Width(tc.r); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.r, got, tc.want)
		}
	}
}

func TestASCII(t *testing.T) {
	cases := map[byte]string{
		'A':  "A",
		' ':  " ",
		'~':  "~",
		0x00: ".",
		0x1f: ".",
		0x7f: ".",
		0xe2: ".",
	}
	for b, want := range cases {
		if got := ASCII(b); got != want {
			t.Fatalf("ASCII(%#x)=%q, want %q", b, got, want)
		}
	}
}

func TestCell_PadsToSpanWidth(t *testing.T) {
	cases := []struct {
		r     rune
		cells int
		want  string
	}{
		{r: 'A', cells: 1, want: "A"},
		{r: 'क', cells: 3, want: "क  "},
		{r: '世', cells: 3, want: "世 "},
		{r: '😀', cells: 4, want: "😀  "},
		{r: '世', cells: 1, want: "."},
		{r: '\n', cells: 1, want: "."},
		{r: '́', cells: 2, want: ". "},
		{r: 0xFFFD, cells: 1, want: "."},
		{r: 'A', cells: 0, want: ""},
	}
	for _, tc := range cases {
		got := Cell(tc.r, tc.cells)
		if got != tc.want {
			t.Fatalf("Cell(%q,%d)=%q, want %q", tc.r, tc.cells, got, tc.want)
		}
		if tc.cells > 0 && runewidth.StringWidth(got) != tc.cells {
			t.Fatalf("Cell(%q,%d) width=%d", tc.r, tc.cells, runewidth.StringWidth(got))
		}
	}
}

func TestFit(t *testing.T) {
	if got := Fit("abc", 5); got != "abc  " {
		t.Fatalf("Fit pad=%q", got)
	}
	if got := Fit("abcdef", 4); got != "abcd" {
		t.Fatalf("Fit truncate=%q", got)
	}
	if got := Fit("世界", 3); runewidth.StringWidth(got) != 3 {
		t.Fatalf("Fit wide=%q width=%d", got, runewidth.StringWidth(got))
	}
	if got := Fit("x", 0); got != "" {
		t.Fatalf("Fit zero=%q", got)
	}
}
