package search

import "github.com/iw2rmb/hexed/memory"

// MatchSet holds match start addresses in increasing order. Matches may
// overlap.
type MatchSet []memory.Addr

// Scan tests every start address against p. A newline (0x0A) in the pattern
// also matches a CR LF pair.
func Scan(src memory.Source, p Pattern) MatchSet {
	n := src.Len()
	if len(p) == 0 || len(p) > n {
		return nil
	}
	var out MatchSet
	for a := 0; a <= n-len(p); a++ {
		if matchAt(src, n, a, p) {
			out = append(out, memory.Addr(a))
		}
	}
	return out
}

func matchAt(src memory.Source, n, a int, p Pattern) bool {
	j := a
	for _, want := range p {
		if j >= n {
			return false
		}
		got := src.Read(memory.Addr(j))
		if want == '\n' && got == '\r' && j+1 < n && src.Read(memory.Addr(j+1)) == '\n' {
			j += 2
			continue
		}
		if got != want {
			return false
		}
		j++
	}
	return true
}
