package memory

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/hexed/internal/codepoint"
)

// CopyFormat selects the textual rendering produced by CopyAs.
type CopyFormat int

const (
	CopyHex CopyFormat = iota
	CopyDecimal
	CopyBinary
	CopyASCII
	CopyUTF8
)

func (f CopyFormat) String() string {
	switch f {
	case CopyHex:
		return "hex"
	case CopyDecimal:
		return "decimal"
	case CopyBinary:
		return "binary"
	case CopyASCII:
		return "ascii"
	case CopyUTF8:
		return "utf8"
	default:
		return "unknown"
	}
}

// ParseCopyFormat maps a format name back to its CopyFormat.
func ParseCopyFormat(name string) (CopyFormat, bool) {
	for f := CopyHex; f <= CopyUTF8; f++ {
		if strings.EqualFold(name, f.String()) {
			return f, true
		}
	}
	return CopyHex, false
}

// CopyOptions tunes the numeric formats.
type CopyOptions struct {
	// Separator goes between bytes in hex, decimal and binary output.
	// Empty means a single space.
	Separator string
	// NoSeparator concatenates bytes.
	NoSeparator bool
	// Lowercase renders hex digits in lower case.
	Lowercase bool
}

func (o CopyOptions) sep() string {
	if o.NoSeparator {
		return ""
	}
	if o.Separator == "" {
		return " "
	}
	return o.Separator
}

// CopyAs renders the selected bytes in format f. ok is false when nothing is
// selected.
func (s *Session) CopyAs(f CopyFormat, opt CopyOptions) (text string, ok bool) {
	r, ok := s.Selection()
	if !ok {
		return "", false
	}
	return CopyRange(s.src, r, f, opt), true
}

// CopyRange renders the bytes of r read through src.
func CopyRange(src Source, r Range, f CopyFormat, opt CopyOptions) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	switch f {
	case CopyASCII:
		sb.Grow(r.Len())
		for a := r.Start; a <= r.End; a++ {
			sb.WriteByte(asciiByte(src.Read(a)))
		}
	case CopyUTF8:
		copyUTF8(&sb, src, r)
	default:
		sep := opt.sep()
		var buf [8]byte
		for a := r.Start; a <= r.End; a++ {
			if a > r.Start {
				sb.WriteString(sep)
			}
			sb.Write(formatByte(buf[:0], src.Read(a), f, opt.Lowercase))
		}
	}
	return sb.String()
}

func copyUTF8(sb *strings.Builder, src Source, r Range) {
	end := int(r.End) + 1
	for a := int(r.Start); a < end; {
		cp, n := codepoint.Decode(src.at, end, a)
		if n == 0 {
			sb.Write(codepoint.ReplacementBytes[:])
			a++
			continue
		}
		var buf [codepoint.MaxLen]byte
		sb.Write(buf[:codepoint.Encode(buf[:], cp)])
		a += n
	}
}

func asciiByte(b byte) byte {
	if b < 32 || b >= 128 {
		return '.'
	}
	return b
}

func formatByte(dst []byte, b byte, f CopyFormat, lower bool) []byte {
	switch f {
	case CopyDecimal:
		return strconv.AppendUint(dst, uint64(b), 10)
	case CopyBinary:
		for i := 7; i >= 0; i-- {
			dst = append(dst, '0'+(b>>uint(i))&1)
		}
		return dst
	default:
		digits := "0123456789ABCDEF"
		if lower {
			digits = "0123456789abcdef"
		}
		return append(dst, digits[b>>4], digits[b&0x0F])
	}
}
