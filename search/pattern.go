package search

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/iw2rmb/hexed/internal/codepoint"
	"github.com/iw2rmb/hexed/memory"
)

// Mode selects how a pattern string is compiled.
type Mode int

const (
	ModeHex Mode = iota
	ModeDecimal
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "hex"
	case ModeDecimal:
		return "decimal"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// Next cycles through the modes.
func (m Mode) Next() Mode {
	return (m + 1) % (ModeText + 1)
}

// Options tunes decimal compilation.
type Options struct {
	// Typed compiles a decimal pattern as a single value of Type stored in
	// Order instead of a list of bytes.
	Typed bool
	Type  memory.DataType
	Order binary.ByteOrder
}

// Pattern is a compiled byte sequence.
type Pattern []byte

// Compile turns input into a Pattern according to mode.
func Compile(input string, mode Mode, opt Options) (Pattern, error) {
	switch mode {
	case ModeHex:
		return compileHex(input)
	case ModeDecimal:
		if opt.Typed {
			return compileTyped(input, opt)
		}
		return compileDecimal(input)
	case ModeText:
		return compileText(input)
	default:
		return nil, &PatternError{Mode: mode, Err: ErrEmptyPattern}
	}
}

func compileHex(input string) (Pattern, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, &PatternError{Mode: ModeHex, Err: ErrEmptyPattern}
	}
	var out Pattern
	for _, tok := range fields {
		if len(tok)%2 != 0 {
			return nil, &PatternError{Mode: ModeHex, Token: tok, Err: ErrHexFormat}
		}
		for i := 0; i < len(tok); i += 2 {
			hi, ok1 := hexNibble(tok[i])
			lo, ok2 := hexNibble(tok[i+1])
			if !ok1 || !ok2 {
				return nil, &PatternError{Mode: ModeHex, Token: tok, Err: ErrHexFormat}
			}
			out = append(out, hi<<4|lo)
		}
	}
	return out, nil
}

func compileDecimal(input string) (Pattern, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, &PatternError{Mode: ModeDecimal, Err: ErrEmptyPattern}
	}
	out := make(Pattern, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return nil, &PatternError{Mode: ModeDecimal, Token: tok, Err: ErrDecimalFormat}
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func compileTyped(input string, opt Options) (Pattern, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, &PatternError{Mode: ModeDecimal, Err: ErrEmptyPattern}
	}
	if strings.ContainsAny(text, " \t\r\n") {
		return nil, &PatternError{Mode: ModeDecimal, Token: text, Err: ErrDecimalFormat}
	}
	b, err := memory.EncodeValue(text, opt.Type, opt.Order)
	if err != nil {
		return nil, &PatternError{Mode: ModeDecimal, Token: text, Err: ErrDecimalFormat}
	}
	return b, nil
}

func compileText(input string) (Pattern, error) {
	if input == "" {
		return nil, &PatternError{Mode: ModeText, Err: ErrEmptyPattern}
	}
	p := Pattern(input)
	for i := 0; i < len(p); {
		_, n := codepoint.DecodeBytes(p[i:])
		if n == 0 {
			return nil, &PatternError{Mode: ModeText, Token: input[i:minInt(i+codepoint.MaxLen, len(input))], Err: ErrTextFormat}
		}
		i += n
	}
	return p, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
