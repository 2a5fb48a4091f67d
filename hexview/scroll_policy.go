package hexview

// ScrollPolicy controls how the first visible row may move relative to the
// edit cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual allows mouse wheel scrolling even when the cursor
	// does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps vertical movement cursor-driven. Manual
	// scrolling is ignored.
	ScrollFollowCursorOnly
)
