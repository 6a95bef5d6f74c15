package model

// Change describes a single edit: the text in the half-open span that
// used to read OldText now reads NewText, starting at display column X
// on line LineNo.
//
// Changes are always expressed in input coordinates — the line/column
// of the text the engine is about to process, not the working
// (possibly already-edited) output.
type Change struct {
	X       Column
	LineNo  LineNumber
	OldText string
	NewText string
}

// IsZero reports whether c is the zero Change.
func (c Change) IsZero() bool {
	return c == Change{}
}
