// Package hexview provides a Bubble Tea component that renders and edits a
// memory.Source as rows of hex bytes with an optional text column.
//
// The component owns a memory.Session (cursor, selection, history) and a
// search.Engine. Hosts drive it through Update and read state back through
// Session, Finder and ViewportState.
package hexview
