// Package codepoint decodes and encodes UTF-8 over random-access byte sources.
//
// Unlike unicode/utf8, Decode reports failures as a zero length so callers
// can tell "invalid byte" apart from a decoded U+FFFD, and it accepts
// surrogate code points so every value produced by Encode round-trips.
package codepoint

// Replacement is the code point shown for bytes that fail to decode.
const Replacement rune = 0xFFFD

// MaxLen is the longest encoded sequence.
const MaxLen = 4

// ReplacementBytes is Replacement encoded as UTF-8.
var ReplacementBytes = [3]byte{0xEF, 0xBF, 0xBD}

// IsContinuation reports whether b is a 10xxxxxx continuation byte.
func IsContinuation(b byte) bool { return b&0xC0 == 0x80 }

// Decode decodes the sequence starting at off in a source of size bytes read
// through at. It returns length 0 when the bytes at off are truncated,
// malformed, overlong, or encode a value above U+10FFFF. Callers treat a
// zero length as a single invalid byte.
func Decode(at func(int) byte, size, off int) (rune, int) {
	if at == nil || off < 0 || off >= size {
		return 0, 0
	}

	b0 := at(off)
	var n int
	var r, min rune
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0&0xE0 == 0xC0:
		n, r, min = 2, rune(b0&0x1F), 0x80
	case b0&0xF0 == 0xE0:
		n, r, min = 3, rune(b0&0x0F), 0x800
	case b0&0xF8 == 0xF0:
		n, r, min = 4, rune(b0&0x07), 0x10000
	default:
		return 0, 0
	}

	if off+n > size {
		return 0, 0
	}
	for i := 1; i < n; i++ {
		c := at(off + i)
		if !IsContinuation(c) {
			return 0, 0
		}
		r = r<<6 | rune(c&0x3F)
	}
	if r < min || r > 0x10FFFF {
		return 0, 0
	}
	return r, n
}

// DecodeBytes decodes the first sequence in p.
func DecodeBytes(p []byte) (rune, int) {
	return Decode(func(i int) byte { return p[i] }, len(p), 0)
}

// Len returns the number of bytes Encode writes for r, or 0 when r cannot be
// encoded.
func Len(r rune) int {
	switch {
	case r < 0:
		return 0
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	case r < 0x110000:
		return 4
	default:
		return 0
	}
}

// Encode writes r into dst and returns the number of bytes written.
// It writes nothing and returns 0 for negative values, values at or above
// 0x110000, or when dst is too short.
func Encode(dst []byte, r rune) int {
	n := Len(r)
	if n == 0 || len(dst) < n {
		return 0
	}
	switch n {
	case 1:
		dst[0] = byte(r)
	case 2:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
	case 3:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
	case 4:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3F
		dst[2] = 0x80 | byte(r>>6)&0x3F
		dst[3] = 0x80 | byte(r)&0x3F
	}
	return n
}

// AppendRune appends the encoding of r to dst. Unencodable values append
// ReplacementBytes.
func AppendRune(dst []byte, r rune) []byte {
	var buf [MaxLen]byte
	n := Encode(buf[:], r)
	if n == 0 {
		return append(dst, ReplacementBytes[:]...)
	}
	return append(dst, buf[:n]...)
}
