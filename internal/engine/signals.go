package engine

import "github.com/dshills/parinfer-go/internal/model"

// restartSignal is raised only in indent/smart mode when the engine
// decides the whole call must be redone in paren mode from scratch. It
// is never attached to an Answer — Run catches it at the processText
// boundary and starts a fresh State.
type restartSignal struct{}

func (*restartSignal) Error() string { return "parinfer: restart as paren mode" }

var errRestart = &restartSignal{}

// engineError carries a populated model.Error up to the processText
// boundary, where it is recorded on the Answer and processing moves on
// to output assembly (it never panics and never loses partially built
// working state).
type engineError struct {
	err *model.Error
}

func (e *engineError) Error() string { return e.err.Msg }

func newEngineError(err *model.Error) *engineError {
	return &engineError{err: err}
}
