package memory

// Source is the byte-buffer capability set a Session reads through.
//
// Every handler is optional. Read falls back to indexing Data; Write falls
// back to assigning into Data and is unavailable when both WriteFn and Data
// are nil. Handlers capture whatever user data they need.
type Source struct {
	// Data backs the default Read and Write handlers.
	Data []byte
	// Size is the number of addressable bytes. Zero means len(Data), so a
	// ReadFn-only source is empty exactly when both Size and Data are unset.
	Size int

	ReadFn      func(a Addr) byte
	WriteFn     func(a Addr, b byte)
	HighlightFn func(a Addr) bool
	BgColorFn   func(a Addr) Color
}

// Bytes returns a Source over p using the default handlers.
func Bytes(p []byte) Source {
	return Source{Data: p}
}

// Len returns the addressable size.
func (s Source) Len() int {
	if s.Size > 0 {
		return s.Size
	}
	return len(s.Data)
}

// Read returns the byte at a. Out-of-range reads return 0.
func (s Source) Read(a Addr) byte {
	if !a.Valid(s.Len()) {
		return 0
	}
	if s.ReadFn != nil {
		return s.ReadFn(a)
	}
	if int(a) < len(s.Data) {
		return s.Data[a]
	}
	return 0
}

// Writable reports whether Write can succeed.
func (s Source) Writable() bool {
	return s.WriteFn != nil || s.Data != nil
}

// Write stores b at a. It reports false when a is out of range or the source
// has no write capability.
func (s Source) Write(a Addr, b byte) bool {
	if !a.Valid(s.Len()) {
		return false
	}
	if s.WriteFn != nil {
		s.WriteFn(a, b)
		return true
	}
	if int(a) < len(s.Data) {
		s.Data[a] = b
		return true
	}
	return false
}

// Highlight reports the per-byte highlight property.
func (s Source) Highlight(a Addr) bool {
	if s.HighlightFn == nil || !a.Valid(s.Len()) {
		return false
	}
	return s.HighlightFn(a)
}

// BgColor returns the per-byte background colour. ok is false when no colour
// applies.
func (s Source) BgColor(a Addr) (c Color, ok bool) {
	if s.BgColorFn == nil || !a.Valid(s.Len()) {
		return 0, false
	}
	c = s.BgColorFn(a)
	_, _, _, alpha := c.Components()
	return c, alpha != 0
}

// ReadRange copies the bytes of r into a new slice.
func (s Source) ReadRange(r Range) []byte {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return nil
	}
	out := make([]byte, 0, r.Len())
	for a := r.Start; a <= r.End; a++ {
		out = append(out, s.Read(a))
	}
	return out
}

func (s Source) at(i int) byte { return s.Read(Addr(i)) }
