package parinfer

import "github.com/dshills/parinfer-go/internal/model"

// Re-exported value model. Callers never need to import
// github.com/dshills/parinfer-go/internal/... directly; every type
// Process's contract mentions has a name here.
type (
	LineNumber = model.LineNumber
	Column     = model.Column
	Delta      = model.Delta

	Request = model.Request
	Options = model.Options
	Change  = model.Change
	Answer  = model.Answer

	Paren      = model.Paren
	ParenTrail = model.ParenTrail
	TabStop    = model.TabStop
	Closer     = model.Closer

	ErrorName = model.ErrorName
)

// Mode selects how Process reconciles indentation and paren structure.
type Mode = model.Mode

// The three modes Process accepts on a Request.
const (
	ModeIndent = model.ModeIndent
	ModeParen  = model.ModeParen
	ModeSmart  = model.ModeSmart
)

// The complete error vocabulary an Answer.Err.Name can carry.
const (
	ErrQuoteDanger         = model.ErrQuoteDanger
	ErrEOLBackslash        = model.ErrEOLBackslash
	ErrUnclosedQuote       = model.ErrUnclosedQuote
	ErrUnclosedParen       = model.ErrUnclosedParen
	ErrUnmatchedCloseParen = model.ErrUnmatchedCloseParen
	ErrUnmatchedOpenParen  = model.ErrUnmatchedOpenParen
	ErrLeadingCloseParen   = model.ErrLeadingCloseParen
)
