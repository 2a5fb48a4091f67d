package memory

import "testing"

func TestGrid_RowBoundsProperty(t *testing.T) {
	for cols := 1; cols <= 33; cols++ {
		g := NewGrid(cols)
		for a := Addr(0); a < 200; a++ {
			row := g.Row(a)
			lo := row * cols
			if !(lo <= int(a) && int(a) < lo+cols) {
				t.Fatalf("cols=%d addr=%d: row %d does not contain addr", cols, a, row)
			}
			if got := g.RowStart(row) + Addr(g.Col(a)); got != a {
				t.Fatalf("cols=%d addr=%d: RowStart+Col=%d", cols, a, got)
			}
		}
	}
}

func TestGrid_ClampsCols(t *testing.T) {
	if g := NewGrid(0); g.Cols != 1 {
		t.Fatalf("NewGrid(0).Cols=%d, want 1", g.Cols)
	}
	if got := (Grid{}).Row(5); got != 5 {
		t.Fatalf("zero Grid Row(5)=%d, want 5", got)
	}
}

func TestGrid_PartialLastRow(t *testing.T) {
	g := NewGrid(16)
	if got := g.RowCount(40); got != 3 {
		t.Fatalf("RowCount(40)=%d, want 3", got)
	}
	if got := g.RowEnd(2, 40); got != 39 {
		t.Fatalf("RowEnd(2)=%d, want 39", got)
	}
	if got := g.RowEnd(3, 40); got != NoAddr {
		t.Fatalf("RowEnd past end=%d, want NoAddr", got)
	}
	if got := g.Addr(2, 9, 40); got != NoAddr {
		t.Fatalf("Addr past end=%d, want NoAddr", got)
	}
	if got := g.Addr(1, 3, 40); got != 19 {
		t.Fatalf("Addr(1,3)=%d, want 19", got)
	}
}

func TestGrid_Visible(t *testing.T) {
	g := NewGrid(8)
	first, last := g.Visible(1, 2, 30)
	if first != 8 || last != 23 {
		t.Fatalf("Visible(1,2)=(%d,%d), want (8,23)", first, last)
	}
	first, last = g.Visible(2, 10, 30)
	if first != 16 || last != 29 {
		t.Fatalf("Visible clipped=(%d,%d), want (16,29)", first, last)
	}
	first, last = g.Visible(9, 1, 30)
	if first != NoAddr || last != NoAddr {
		t.Fatalf("Visible past end=(%d,%d), want NoAddr", first, last)
	}
}
