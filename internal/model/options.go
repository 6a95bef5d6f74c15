package model

// Options carries everything about the call context beyond the mode
// and the text itself. Every position field is optional — nil means
// "the caller did not supply this" — because their presence changes
// engine behavior (cursor holding, restart detection, tab-stop
// rebuilding) rather than merely defaulting to zero.
type Options struct {
	// CursorX and CursorLine locate the caller's cursor in the new
	// text. Both must be set together for cursor-dependent behavior
	// (holding, clamping, tab stops) to engage.
	CursorX    *Column
	CursorLine *LineNumber

	// PrevCursorX and PrevCursorLine locate the cursor before the
	// edit that produced Text. Used only to detect the
	// holding-to-not-holding transition that raises Restart.
	PrevCursorX    *Column
	PrevCursorLine *LineNumber

	// SelectionStartLine, when set, is the line tab stops are rebuilt
	// for instead of CursorLine, and disables Restart-driven smart
	// mode entirely (see ModeSmart dispatch).
	SelectionStartLine *LineNumber

	// Changes is the ordered sequence of edits the caller already
	// knows about. When empty and PrevText is set, the engine derives
	// a single Change by diffing PrevText against Text.
	Changes []Change

	// PrevText is the text before the edit that produced the Request's
	// Text, used only to synthesize Changes when the caller didn't
	// supply any.
	PrevText *string

	// PartialResult, when true, makes a failed call return the
	// partially-edited working text and cursor instead of the
	// original input.
	PartialResult bool

	// ForceBalance suppresses the leading-close-paren error/restart in
	// indent mode and instead silently drops the stray closer.
	ForceBalance bool

	// ReturnParens, when true, makes the engine populate Answer.Parens
	// with the full paren tree it built.
	ReturnParens bool
}

// HasCursor reports whether both cursor coordinates were supplied.
func (o Options) HasCursor() bool {
	return o.CursorX != nil && o.CursorLine != nil
}

// HasPrevCursor reports whether both previous-cursor coordinates were
// supplied.
func (o Options) HasPrevCursor() bool {
	return o.PrevCursorX != nil && o.PrevCursorLine != nil
}
