package memory

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestSession_SetSelection_NormalizesAndClamps(t *testing.T) {
	s := New(Bytes(make([]byte, 10)), Options{})

	s.SetSelection(7, 2)
	r, ok := s.Selection()
	if !ok || r != (Range{Start: 2, End: 7}) {
		t.Fatalf("selection=%s", spew.Sdump(r, ok))
	}

	s.SetSelection(-5, 50)
	r, _ = s.Selection()
	if r != (Range{Start: 0, End: 9}) {
		t.Fatalf("clamped selection=%v, want [0,9]", r)
	}
}

func TestSession_SetSelection_OrderIndependent(t *testing.T) {
	data := []byte("a\xe2\x82\xacb\xc3\xa9\xf0\x9f\x98\x80z\x80\xff")
	for _, utf8 := range []bool{false, true} {
		s := New(Bytes(data), Options{UTF8: utf8})
		for a := Addr(0); int(a) < len(data); a++ {
			for b := Addr(0); int(b) < len(data); b++ {
				s.SetSelection(a, b)
				ab, _ := s.Selection()
				s.SetSelection(b, a)
				ba, _ := s.Selection()
				if ab != ba {
					t.Fatalf("utf8=%v: SetSelection(%d,%d)=%v but reversed=%v", utf8, a, b, ab, ba)
				}
				if ab.Start > ab.End || !ab.Start.Valid(len(data)) || !ab.End.Valid(len(data)) {
					t.Fatalf("utf8=%v: invalid range %v", utf8, ab)
				}
			}
		}
	}
}

func TestSession_SetSelection_MarksChanged(t *testing.T) {
	s := New(Bytes([]byte("abc")), Options{})
	_ = s.SelectionChanged()

	s.SetSelection(0, 1)
	v := s.Version()
	if !s.SelectionChanged() {
		t.Fatalf("expected changed flag after SetSelection")
	}
	if s.SelectionChanged() {
		t.Fatalf("flag should be consumed")
	}

	s.SetSelection(0, 1)
	if !s.SelectionChanged() || s.Version() == v {
		t.Fatalf("setting the same selection must still mark it changed")
	}
}

func TestSession_UTF8Snapping(t *testing.T) {
	// 'a' | E2 82 AC (€) | 'b'
	data := []byte{'a', 0xE2, 0x82, 0xAC, 'b'}
	s := New(Bytes(data), Options{UTF8: true})

	cases := []struct {
		a, b Addr
		want Range
	}{
		{a: 2, b: 3, want: Range{Start: 1, End: 3}},
		{a: 3, b: 0, want: Range{Start: 0, End: 3}},
		{a: 4, b: 2, want: Range{Start: 1, End: 4}},
		{a: 2, b: 2, want: Range{Start: 1, End: 3}},
		{a: 4, b: 4, want: Range{Start: 4, End: 4}},
	}
	for _, tc := range cases {
		s.SetSelection(tc.a, tc.b)
		got, _ := s.Selection()
		if got != tc.want {
			t.Fatalf("SetSelection(%d,%d)=%v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSession_UTF8Snapping_FourByteAndBufferStart(t *testing.T) {
	s := New(Bytes([]byte{0xF0, 0x9F, 0x98, 0x80, 'x'}), Options{UTF8: true})
	s.SetSelection(3, 3)
	if got, _ := s.Selection(); got != (Range{Start: 0, End: 3}) {
		t.Fatalf("emoji tail selection=%v, want [0,3]", got)
	}
	s.SetSelection(1, 1)
	if got, _ := s.Selection(); got != (Range{Start: 0, End: 3}) {
		t.Fatalf("emoji body selection=%v, want [0,3]", got)
	}

	// Orphan continuation bytes at the start of the buffer are their own spans.
	s = New(Bytes([]byte{0x82, 0xAC, 'A'}), Options{UTF8: true})
	for a := Addr(0); a < 3; a++ {
		s.SetSelection(a, a)
		if got, _ := s.Selection(); got != (Range{Start: a, End: a}) {
			t.Fatalf("orphan byte %d selection=%v, want single byte", a, got)
		}
	}
}

func TestSession_UTF8Snapping_TruncatedSequenceAtEnd(t *testing.T) {
	s := New(Bytes([]byte{'A', 0xE2, 0x82}), Options{UTF8: true})
	s.SetSelection(2, 2)
	if got, _ := s.Selection(); got != (Range{Start: 2, End: 2}) {
		t.Fatalf("selection=%v, want [2,2]", got)
	}
	s.SetSelection(0, 1)
	if got, _ := s.Selection(); got != (Range{Start: 0, End: 1}) {
		t.Fatalf("selection=%v, want [0,1]", got)
	}
}

func TestSession_UTF8Snapping_ASCIIIsNoOp(t *testing.T) {
	data := []byte("The quick brown fox")
	s := New(Bytes(data), Options{UTF8: true})
	for a := Addr(0); int(a) < len(data); a++ {
		for b := a; int(b) < len(data); b++ {
			s.SetSelection(a, b)
			if got, _ := s.Selection(); got != (Range{Start: a, End: b}) {
				t.Fatalf("ascii selection (%d,%d) snapped to %v", a, b, got)
			}
		}
	}
}

func TestSession_SetUTF8_ResnapsSelection(t *testing.T) {
	s := New(Bytes([]byte{'a', 0xC3, 0xA9}), Options{})
	s.SetSelection(2, 2)
	s.SetUTF8(true)
	if got, _ := s.Selection(); got != (Range{Start: 1, End: 2}) {
		t.Fatalf("selection after enabling UTF-8=%v, want [1,2]", got)
	}
}

func TestSession_EmptySourceSelection(t *testing.T) {
	s := New(Bytes(nil), Options{UTF8: true})
	s.SetSelection(0, 0)
	if s.HasSelection() {
		t.Fatalf("empty source must not have a selection")
	}
	s.SelectAll()
	if s.HasSelection() {
		t.Fatalf("select all on empty source must stay empty")
	}
	if _, ok := s.CopyAs(CopyHex, CopyOptions{}); ok {
		t.Fatalf("copy without selection should report nothing")
	}
}

func TestSession_ClearSelection(t *testing.T) {
	s := New(Bytes([]byte("abc")), Options{})
	s.SetSelection(0, 2)
	s.SetAnchor(0)
	s.ClearSelection()
	if s.Anchor() != NoAddr {
		t.Fatalf("anchor after clear=%d", s.Anchor())
	}
	r, ok := s.Selection()
	if ok || r != EmptyRange {
		t.Fatalf("selection after clear=%v ok=%v", r, ok)
	}
	s.SetSelection(NoAddr, 1)
	if s.HasSelection() {
		t.Fatalf("sentinel bound must clear the selection")
	}
}

func TestSession_Span(t *testing.T) {
	s := New(Bytes([]byte{'a', 0xC3, 0xA9, 0x80}), Options{})
	cases := []struct {
		a     Addr
		start Addr
		n     int
	}{
		{a: 0, start: 0, n: 1},
		{a: 1, start: 1, n: 2},
		{a: 2, start: 1, n: 2},
		{a: 3, start: 3, n: 1},
		{a: 4, start: NoAddr, n: 0},
	}
	for _, tc := range cases {
		start, n := s.Span(tc.a)
		if start != tc.start || n != tc.n {
			t.Fatalf("Span(%d)=(%d,%d), want (%d,%d)", tc.a, start, n, tc.start, tc.n)
		}
	}
}
