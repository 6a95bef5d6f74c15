package engine

import "github.com/dshills/parinfer-go/internal/model"

// Run executes one processText pass in the given mode, transparently
// re-entering in paren mode if a Restart is raised. This is the only
// exported entry point into the engine; the root parinfer package's
// IndentMode/ParenMode/SmartMode all funnel through it.
func Run(text string, opts model.Options, mode model.Mode, smart bool) model.Answer {
	st := newState(text, opts, mode, smart)
	err := st.processText()

	if _, restarted := err.(*restartSignal); restarted {
		st = newState(text, opts, model.ModeParen, false)
		err = st.processText()
	}

	if ee, ok := err.(*engineError); ok {
		st.applyError(ee.err)
	} else {
		st.success = true
	}

	return st.buildAnswer()
}

// processText runs processLine across every input line, then
// finalizeResult. A non-nil return is either *restartSignal (only
// possible in indent/smart mode) or *engineError.
func (st *State) processText() error {
	for i := range st.inputLines {
		st.inputLineNo = model.LineNumber(i)
		if err := st.processLine(); err != nil {
			return err
		}
	}
	return st.finalizeResult()
}

func (st *State) applyError(err *model.Error) {
	st.success = false
	st.finalErr = err
}
