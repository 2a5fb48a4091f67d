// Package search finds byte patterns in a memory.Source.
//
// Patterns are compiled from hex pairs, decimal byte lists (or one typed
// value), or UTF-8 text. A scan reports every start address, overlapping
// matches included. An Engine keeps the last pattern and its matches and
// steps through them with wraparound.
package search
