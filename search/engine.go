package search

import (
	"sort"

	"github.com/iw2rmb/hexed/memory"
)

// Result is the outcome of a Next or Prev step.
type Result struct {
	Addr memory.Addr
	// Wrapped is set when the match came from the opposite end of the set.
	Wrapped bool
	OK      bool
}

// Engine owns one pattern and its match set. Engines are not shared between
// views.
type Engine struct {
	input   string
	mode    Mode
	pattern Pattern
	matches MatchSet
}

func NewEngine() *Engine { return &Engine{} }

// Search compiles input and rescans src. On a compile error the previous
// pattern and matches are kept.
func (e *Engine) Search(src memory.Source, input string, mode Mode, opt Options) (int, error) {
	p, err := Compile(input, mode, opt)
	if err != nil {
		return len(e.matches), err
	}
	e.input = input
	e.mode = mode
	e.pattern = p
	e.matches = Scan(src, p)
	return len(e.matches), nil
}

// Rescan repeats the last search over src, for example after the data
// changed.
func (e *Engine) Rescan(src memory.Source) int {
	if len(e.pattern) == 0 {
		return 0
	}
	e.matches = Scan(src, e.pattern)
	return len(e.matches)
}

// Reset drops the pattern and matches.
func (e *Engine) Reset() {
	*e = Engine{}
}

func (e *Engine) Input() string { return e.input }

func (e *Engine) Mode() Mode { return e.mode }

// Pattern returns a copy of the compiled pattern.
func (e *Engine) Pattern() Pattern { return append(Pattern(nil), e.pattern...) }

// Matches returns a copy of the match set.
func (e *Engine) Matches() MatchSet { return append(MatchSet(nil), e.matches...) }

func (e *Engine) Count() int { return len(e.matches) }

// Index returns the position of a in the match set, or -1.
func (e *Engine) Index(a memory.Addr) int {
	i := sort.Search(len(e.matches), func(i int) bool { return e.matches[i] >= a })
	if i < len(e.matches) && e.matches[i] == a {
		return i
	}
	return -1
}

// Window returns the matches that cover at least one address in
// [first, last]. The result aliases the engine's match set.
func (e *Engine) Window(first, last memory.Addr) MatchSet {
	if len(e.matches) == 0 || first == memory.NoAddr || last < first {
		return nil
	}
	n := memory.Addr(len(e.pattern))
	i := sort.Search(len(e.matches), func(i int) bool { return e.matches[i]+n > first })
	j := sort.Search(len(e.matches), func(i int) bool { return e.matches[i] > last })
	if i >= j {
		return nil
	}
	return e.matches[i:j:j]
}

// PatternLen returns the compiled pattern length in bytes.
func (e *Engine) PatternLen() int { return len(e.pattern) }

// Next returns the first match after cur, wrapping to the first match when
// none follows. NoAddr starts from the beginning without wrapping.
func (e *Engine) Next(cur memory.Addr) Result {
	if len(e.matches) == 0 {
		return Result{Addr: memory.NoAddr}
	}
	i := sort.Search(len(e.matches), func(i int) bool { return e.matches[i] >= cur+1 })
	if i < len(e.matches) {
		return Result{Addr: e.matches[i], OK: true}
	}
	return Result{Addr: e.matches[0], Wrapped: true, OK: true}
}

// Prev returns the last match before cur, wrapping to the last match when
// none precedes. NoAddr starts from the end without wrapping.
func (e *Engine) Prev(cur memory.Addr) Result {
	if len(e.matches) == 0 {
		return Result{Addr: memory.NoAddr}
	}
	last := len(e.matches) - 1
	if cur == memory.NoAddr {
		return Result{Addr: e.matches[last], OK: true}
	}
	i := sort.Search(len(e.matches), func(i int) bool { return e.matches[i] >= cur })
	if i > 0 {
		return Result{Addr: e.matches[i-1], OK: true}
	}
	return Result{Addr: e.matches[last], Wrapped: true, OK: true}
}
