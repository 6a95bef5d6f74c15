package model

// Answer is produced once per call and owns every string and sequence
// it references — the caller may mutate or discard its own Request
// immediately after receiving an Answer.
type Answer struct {
	Text    string
	Success bool
	Err     *Error

	CursorX    *Column
	CursorLine *LineNumber

	TabStops    []TabStop
	ParenTrails []ParenTrail
	Parens      []*Paren
}
