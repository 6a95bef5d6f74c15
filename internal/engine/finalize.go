package engine

import (
	"strings"

	"github.com/dshills/parinfer-go/internal/model"
)

// finalizeResult runs the end-of-input checks and, in indent mode,
// closes whatever parens are still open by running one more
// onIndent against a virtual empty final line.
func (st *State) finalizeResult() error {
	if st.quoteDanger {
		return newEngineError(model.NewError(model.ErrQuoteDanger, st.x, st.lineNo, st.inputX, st.inputLineNo))
	}
	if st.context == contextString {
		return newEngineError(model.NewError(model.ErrUnclosedQuote, st.x, st.lineNo, st.inputX, st.inputLineNo))
	}

	if st.mode == model.ModeParen {
		if len(st.parenStack) > 0 {
			top := st.parenStack[len(st.parenStack)-1]
			return newEngineError(model.NewError(model.ErrUnclosedParen, top.X, top.LineNo, top.InputX, top.InputLineNo))
		}
		return nil
	}

	st.workingLines = append(st.workingLines, workingLine{})
	st.initLine()
	if err := st.onIndent(); err != nil {
		return err
	}
	if st.parenTrail.LineNo == st.lineNo {
		if err := st.finishNewParenTrail(); err != nil {
			return err
		}
	}
	st.workingLines = st.workingLines[:len(st.workingLines)-1]

	return nil
}

// buildAnswer assembles the public result from the engine's final
// working state, following the success/partial_result rules of the
// output contract.
func (st *State) buildAnswer() model.Answer {
	ans := model.Answer{
		Success:     st.success,
		TabStops:    st.tabStops,
		ParenTrails: st.rememberedTrails,
		Parens:      st.parens,
	}

	if st.success {
		ans.Text = st.joinWorkingLines()
		ans.CursorX = st.cursorX
		ans.CursorLine = st.cursorLine
		return ans
	}

	ans.Err = st.finalErr
	if st.partialResult {
		ans.Text = st.joinWorkingLines()
		ans.CursorX = st.cursorX
		ans.CursorLine = st.cursorLine
	} else {
		ans.Text = st.originalText
		ans.CursorX = st.origCursorX
		ans.CursorLine = st.origCursorLine
	}
	return ans
}

func (st *State) joinWorkingLines() string {
	parts := make([]string, len(st.workingLines))
	for i, wl := range st.workingLines {
		parts[i] = wl.text
	}
	return strings.Join(parts, st.lineEnding)
}
