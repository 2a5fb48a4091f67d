package search

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPattern  = errors.New("empty pattern")
	ErrHexFormat     = errors.New("invalid hex pattern")
	ErrDecimalFormat = errors.New("invalid decimal pattern")
	ErrTextFormat    = errors.New("invalid UTF-8 text pattern")
)

// PatternError reports why a pattern failed to compile.
type PatternError struct {
	Mode  Mode
	Token string
	Err   error
}

func (e *PatternError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s search: %v", e.Mode, e.Err)
	}
	return fmt.Sprintf("%s search: %v: %q", e.Mode, e.Err, e.Token)
}

func (e *PatternError) Unwrap() error { return e.Err }
