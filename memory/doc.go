// Package memory implements the pure navigation model of a hex memory editor.
//
// A Session maps a fixed-size byte Source onto a grid of rows and columns and
// owns the edit cursor, preview address, selection and write history for one
// host view. Addresses are 0-based byte offsets; NoAddr marks "no address".
// Selection ranges are inclusive: [Start, End].
package memory
