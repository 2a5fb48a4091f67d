package memory

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DataType is the value type shown by the data preview.
type DataType int

const (
	Int8 DataType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

var dataTypeNames = [...]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

func (t DataType) String() string {
	if t < Int8 || t > Float64 {
		return "unknown"
	}
	return dataTypeNames[t]
}

// ParseDataType maps a type name ("int16", "float64", ...) to its DataType.
func ParseDataType(name string) (DataType, bool) {
	for t, n := range dataTypeNames {
		if strings.EqualFold(name, n) {
			return DataType(t), true
		}
	}
	return Int8, false
}

// Size returns the width of t in bytes.
func (t DataType) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

func (t DataType) Signed() bool {
	return t == Int8 || t == Int16 || t == Int32 || t == Int64
}

func (t DataType) Float() bool {
	return t == Float32 || t == Float64
}

// PreviewFormat is the radix used to print integer previews.
type PreviewFormat int

const (
	FormatBin PreviewFormat = iota
	FormatOct
	FormatDec
	FormatHex
)

func (f PreviewFormat) String() string {
	switch f {
	case FormatBin:
		return "bin"
	case FormatOct:
		return "oct"
	case FormatDec:
		return "dec"
	case FormatHex:
		return "hex"
	default:
		return "unknown"
	}
}

// OrderName returns "LE" or "BE" for the two standard byte orders.
func OrderName(order binary.ByteOrder) string {
	if order == binary.BigEndian {
		return "BE"
	}
	return "LE"
}

// Preview formats the value of type t stored at the preview address. ok is
// false when there is no preview address.
func (s *Session) Preview(t DataType, order binary.ByteOrder, f PreviewFormat) (string, bool) {
	a := s.preview
	if !a.Valid(s.Size()) || t.Size() == 0 {
		return "", false
	}
	n := t.Size()
	if rest := s.Size() - int(a); n > rest {
		n = rest
	}
	buf := make([]byte, t.Size())
	for i := 0; i < n; i++ {
		buf[i] = s.src.Read(a + Addr(i))
	}
	return FormatValue(buf, t, order, f), true
}

// FormatValue decodes p (at least t.Size() bytes) as t in the given order.
func FormatValue(p []byte, t DataType, order binary.ByteOrder, f PreviewFormat) string {
	if order == nil {
		order = binary.LittleEndian
	}
	size := t.Size()
	if size == 0 || len(p) < size {
		return ""
	}
	bits := decodeBits(p[:size], order)

	if t.Float() && (f == FormatDec || f == FormatHex) {
		verb := byte('g')
		if f == FormatHex {
			verb = 'x'
		}
		if t == Float32 {
			return strconv.FormatFloat(float64(math.Float32frombits(uint32(bits))), verb, -1, 32)
		}
		return strconv.FormatFloat(math.Float64frombits(bits), verb, -1, 64)
	}

	switch f {
	case FormatBin:
		return groupBits(fmt.Sprintf("%0*b", size*8, bits))
	case FormatOct:
		if t.Signed() {
			return strconv.FormatInt(signExtend(bits, size), 8)
		}
		return strconv.FormatUint(bits, 8)
	case FormatHex:
		return fmt.Sprintf("%0*x", size*2, bits)
	default:
		if t.Signed() {
			return strconv.FormatInt(signExtend(bits, size), 10)
		}
		return strconv.FormatUint(bits, 10)
	}
}

// EncodeValue parses text as a value of type t and returns its bytes in the
// given order. Integers are read in base 10 only.
func EncodeValue(text string, t DataType, order binary.ByteOrder) ([]byte, error) {
	if order == nil {
		order = binary.LittleEndian
	}
	text = strings.TrimSpace(text)
	size := t.Size()
	if size == 0 {
		return nil, fmt.Errorf("unknown data type %d", int(t))
	}

	var bits uint64
	switch {
	case t == Float32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		bits = uint64(math.Float32bits(float32(v)))
	case t == Float64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		bits = math.Float64bits(v)
	case t.Signed():
		v, err := strconv.ParseInt(text, 10, size*8)
		if err != nil {
			return nil, err
		}
		bits = uint64(v)
	default:
		v, err := strconv.ParseUint(text, 10, size*8)
		if err != nil {
			return nil, err
		}
		bits = v
	}

	out := make([]byte, 8)
	switch size {
	case 1:
		out[0] = byte(bits)
	case 2:
		order.PutUint16(out, uint16(bits))
	case 4:
		order.PutUint32(out, uint32(bits))
	default:
		order.PutUint64(out, bits)
	}
	return out[:size], nil
}

func decodeBits(p []byte, order binary.ByteOrder) uint64 {
	switch len(p) {
	case 1:
		return uint64(p[0])
	case 2:
		return uint64(order.Uint16(p))
	case 4:
		return uint64(order.Uint32(p))
	default:
		return order.Uint64(p)
	}
}

func signExtend(bits uint64, size int) int64 {
	shift := uint(64 - size*8)
	return int64(bits<<shift) >> shift
}

func groupBits(s string) string {
	if len(s) <= 8 {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i += 8 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i : i+8])
	}
	return sb.String()
}
