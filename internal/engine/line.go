package engine

import (
	"github.com/dshills/parinfer-go/internal/model"
	"github.com/dshills/parinfer-go/internal/width"
)

// processLine runs one full pass over st.inputLineNo: initialize line
// state, walk every grapheme plus a synthetic trailing newline, run the
// end-of-line error checks, and finish any paren trail opened on this
// line.
func (st *State) processLine() error {
	st.initLine()

	if st.tabStopTargetLine() {
		st.rebuildTabStops()
	}

	line := st.inputLines[st.inputLineNo]
	col := 0
	for _, g := range width.Iterate(line) {
		st.inputX = model.Column(col)
		if err := st.processChar(g.Text, g.Width); err != nil {
			return err
		}
		col += g.Width
	}
	// Trailing newline: input_x holds its post-last-grapheme value and
	// is not advanced further.
	if err := st.processChar("\n", 0); err != nil {
		return err
	}

	if !st.forceBalance {
		if err := st.checkUnmatchedOutsideTrail(); err != nil {
			return err
		}
	}

	if st.parenTrail.LineNo == st.lineNo {
		if err := st.finishNewParenTrail(); err != nil {
			return err
		}
	}

	return nil
}

// initLine resets everything that is scoped to a single line.
func (st *State) initLine() {
	st.lineNo++
	st.x = 0
	st.indentX = nil
	st.commentX = nil
	st.indentDelta = 0

	delete(st.errCache, model.ErrUnmatchedCloseParen)
	delete(st.errCache, model.ErrUnmatchedOpenParen)
	delete(st.errCache, model.ErrLeadingCloseParen)

	st.trackingArgTabStop = argNotSearching
	st.trackingIndent = st.context != contextString

	// paren_trail is deliberately NOT reset here: a trail left dangling
	// from the previous line (no closable grapheme reset it) is still
	// live, and this line's onIndent may extend it via
	// correctParenTrail before any content of its own begins a fresh
	// trail. See resetParenTrail.
}

// tabStopTargetLine reports whether the current line is the one whose
// tab stops should be rebuilt: the selection start line if set,
// otherwise the cursor line.
func (st *State) tabStopTargetLine() bool {
	if st.selectionStartLine != nil {
		return *st.selectionStartLine == st.lineNo
	}
	if st.cursorLine != nil {
		return *st.cursorLine == st.lineNo
	}
	return false
}

// rebuildTabStops snapshots the current paren stack into fresh tab
// stops, innermost opener first.
func (st *State) rebuildTabStops() {
	stops := make([]model.TabStop, 0, len(st.parenStack))
	for i := len(st.parenStack) - 1; i >= 0; i-- {
		p := st.parenStack[i]
		var argX *model.Column
		if p.ArgX != nil {
			v := *p.ArgX
			argX = &v
		}
		stops = append(stops, model.TabStop{
			Ch:     string(p.Ch),
			X:      p.X,
			LineNo: p.LineNo,
			ArgX:   argX,
		})
	}
	st.tabStops = stops
}

// checkUnmatchedOutsideTrail raises the first cached deferred error
// for this line, preferring unmatched-close-paren over
// leading-close-paren. An unmatched closer is only an error when it
// sat left of the line's paren trail; one inside the trail was simply
// dropped. Both are only ever cached in indent mode.
func (st *State) checkUnmatchedOutsideTrail() error {
	if pos, ok := st.errCache[model.ErrUnmatchedCloseParen]; ok &&
		(st.parenTrail.LineNo != st.lineNo || pos.x < st.parenTrail.StartX) {
		return newEngineError(model.NewError(model.ErrUnmatchedCloseParen, pos.x, pos.lineNo, pos.inputX, pos.inputLineNo))
	}
	if pos, ok := st.errCache[model.ErrLeadingCloseParen]; ok {
		return newEngineError(model.NewError(model.ErrLeadingCloseParen, pos.x, pos.lineNo, pos.inputX, pos.inputLineNo))
	}
	return nil
}

// cacheError records the first occurrence of name on this call, in
// both working and input coordinates. Later occurrences of the same
// name are ignored — the earliest site always wins.
func (st *State) cacheError(name model.ErrorName) {
	if _, ok := st.errCache[name]; ok {
		return
	}
	st.errCache[name] = errorPos{
		x:           st.x,
		lineNo:      st.lineNo,
		inputX:      st.inputX,
		inputLineNo: st.inputLineNo,
	}
}
