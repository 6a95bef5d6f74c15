package model

// ErrorName is one of the seven bit-exact error identifiers the engine
// can report. The string values match the external kebab-case
// vocabulary exactly; callers that serialize an Error must use Name
// verbatim.
type ErrorName string

// The complete error vocabulary. No other ErrorName value is ever
// produced by the engine.
const (
	ErrQuoteDanger         ErrorName = "quote-danger"
	ErrEOLBackslash        ErrorName = "eol-backslash"
	ErrUnclosedQuote       ErrorName = "unclosed-quote"
	ErrUnclosedParen       ErrorName = "unclosed-paren"
	ErrUnmatchedCloseParen ErrorName = "unmatched-close-paren"
	ErrUnmatchedOpenParen  ErrorName = "unmatched-open-paren"
	ErrLeadingCloseParen   ErrorName = "leading-close-paren"
)

// messages holds the fixed, human-readable text for each ErrorName.
var messages = map[ErrorName]string{
	ErrQuoteDanger:         "Quotes must balanced inside comment blocks.",
	ErrEOLBackslash:        "Line cannot end in a hanging backslash.",
	ErrUnclosedQuote:       "String is missing a closing quote.",
	ErrUnclosedParen:       "Unclosed open-paren.",
	ErrUnmatchedCloseParen: "Unmatched close-paren.",
	ErrUnmatchedOpenParen:  "Unmatched open-paren.",
	ErrLeadingCloseParen:   "Line cannot lead with a close-paren.",
}

// MessageFor returns the fixed message text for name.
func MessageFor(name ErrorName) string {
	return messages[name]
}

// Error is the failure an Answer carries when Success is false. It
// implements the error interface so it can also travel through normal
// Go error-handling code, but the engine itself never returns it as a
// Go error — see Answer.Err and the parinfer.Process doc comment for
// why.
type Error struct {
	Name ErrorName
	Msg  string

	// X/LineNo are working (possibly already-edited) coordinates.
	X      Column
	LineNo LineNumber

	// InputX/InputLineNo are coordinates in the original, unedited
	// input. Both pairs are always recorded and reported; PartialResult
	// in Options does not change which pair the Answer carries.
	InputX      Column
	InputLineNo LineNumber
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

// NewError builds an Error with its message text filled in from the
// fixed table.
func NewError(name ErrorName, x Column, lineNo LineNumber, inputX Column, inputLineNo LineNumber) *Error {
	return &Error{
		Name:        name,
		Msg:         MessageFor(name),
		X:           x,
		LineNo:      lineNo,
		InputX:      inputX,
		InputLineNo: inputLineNo,
	}
}
