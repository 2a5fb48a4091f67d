package memory

import "fmt"

// Addr is a byte offset into a Source.
type Addr int

// NoAddr is the sentinel for "no address". It is never in range.
const NoAddr Addr = -1

// Valid reports whether a is inside [0, size).
func (a Addr) Valid(size int) bool {
	return a >= 0 && int(a) < size
}

func (a Addr) String() string {
	if a < 0 {
		return "none"
	}
	return fmt.Sprintf("0x%X", int(a))
}

// Range is an inclusive byte range [Start, End]. Start <= End when the range
// is set; an empty range has both bounds at NoAddr.
type Range struct {
	Start Addr
	End   Addr
}

// EmptyRange is the range with no bounds.
var EmptyRange = Range{Start: NoAddr, End: NoAddr}

func (r Range) IsEmpty() bool {
	return r.Start == NoAddr || r.End == NoAddr
}

// Len returns the number of bytes in r.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End-r.Start) + 1
}

// Contains reports whether a lies inside r.
func (r Range) Contains(a Addr) bool {
	return !r.IsEmpty() && a >= r.Start && a <= r.End
}

// NormalizeRange orders the bounds of r.
func NormalizeRange(r Range) Range {
	if r.IsEmpty() {
		return EmptyRange
	}
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

// Color is a packed 0xRRGGBBAA value. A zero alpha means "no colour".
type Color uint32

// RGBA builds a Color from its components.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Components returns the red, green, blue and alpha channels.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	r, g, b, _ := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clampAddr(a Addr, size int) Addr {
	if size <= 0 {
		return NoAddr
	}
	if a < 0 {
		return 0
	}
	if int(a) >= size {
		return Addr(size - 1)
	}
	return a
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
