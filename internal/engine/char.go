package engine

import "github.com/dshills/parinfer-go/internal/model"

// processChar runs the five-step pipeline spec'd for a single grapheme:
// remember it, fold in any recorded edit's indent delta, run indent
// checks if this is the line's first real content, dispatch (or
// suppress) it, then commit whatever it became into the working line.
func (st *State) processChar(orig string, origWidth int) error {
	st.ch = orig
	st.skipChar = false
	st.handledByIndent = false

	st.applyChangeDelta()

	if st.trackingIndent {
		if err := st.checkIndent(); err != nil {
			return err
		}
	}

	var escapedLiteral bool
	switch {
	case st.skipChar:
		st.ch = ""
	case st.handledByIndent:
		// already dispatched from within checkIndent; commit as-is.
	default:
		var err error
		escapedLiteral, err = st.onChar()
		if err != nil {
			return err
		}
	}

	if st.isClosable(escapedLiteral) {
		st.resetParenTrail(st.lineNo, st.x+model.Column(displayWidth(st.ch)))
	}

	if st.trackingArgTabStop != argNotSearching {
		st.advanceArgTabStop()
	}

	st.commit(orig, origWidth)
	return nil
}

// applyChangeDelta folds a caller-supplied edit at this exact input
// position into indent_delta, so indent correction reacts to the edit
// in the same pass that walks over it.
func (st *State) applyChangeDelta() {
	if len(st.changeMap) == 0 {
		return
	}
	if !(st.smart || st.mode == model.ModeParen) {
		return
	}
	c, ok := st.changeMap[changeKey{line: st.inputLineNo, col: st.inputX}]
	if !ok {
		return
	}
	st.indentDelta += model.Delta(displayWidth(c.NewText) - displayWidth(c.OldText))
}

// onChar runs escape handling, then either treats ch as an escaped
// literal (returns escapedLiteral=true) or dispatches it through
// onContext. A non-nil error is always an eol-backslash engineError.
func (st *State) onChar() (escapedLiteral bool, err error) {
	if st.escape == escapeEscaped {
		st.escape = escapeNormal
	}

	if st.escape == escapeEscaping {
		if st.ch == "\n" && st.context == contextCode {
			return false, newEngineError(model.NewError(model.ErrEOLBackslash, st.x, st.lineNo, st.inputX, st.inputLineNo))
		}
		st.escape = escapeEscaped
		return true, nil
	}

	switch st.ch {
	case "\\":
		st.escape = escapeEscaping
		return false, nil
	case "\n":
		if st.context == contextComment {
			st.context = contextCode
		}
		st.ch = ""
		return false, nil
	}

	return false, st.onContext()
}

// onContext is the code/comment/string dispatch table.
func (st *State) onContext() error {
	switch st.context {
	case contextCode:
		switch st.ch {
		case ";":
			x := st.x
			st.commentX = &x
			st.context = contextComment
			st.trackingArgTabStop = argNotSearching
		case "\"":
			st.context = contextString
			st.errCache[model.ErrUnclosedQuote] = st.currentErrorPos()
		case "(", "[", "{":
			st.pushParen(st.ch[0])
			st.trackingArgTabStop = argSpace
		case ")", "]", "}":
			return st.onCloseParen()
		case "\t":
			st.ch = "  "
		}
	case contextComment:
		if st.ch == "\"" {
			st.quoteDanger = !st.quoteDanger
			if st.quoteDanger {
				st.errCache[model.ErrQuoteDanger] = st.currentErrorPos()
			}
		}
	case contextString:
		if st.ch == "\"" {
			st.context = contextCode
		}
	}
	return nil
}

func (st *State) currentErrorPos() errorPos {
	return errorPos{x: st.x, lineNo: st.lineNo, inputX: st.inputX, inputLineNo: st.inputLineNo}
}

// isClosable decides whether the just-dispatched grapheme restarts the
// paren trail: real code text that isn't whitespace and isn't a
// genuine (non-escaped) close paren.
func (st *State) isClosable(escapedLiteral bool) bool {
	if st.ch == "" || st.context != contextCode {
		return false
	}
	if st.ch == " " || st.ch == "  " {
		return false
	}
	if !escapedLiteral && isCloseParenChar(st.ch) {
		return false
	}
	return true
}

// advanceArgTabStop looks for the first argument after an opener, so
// its TabStop can report arg_x.
func (st *State) advanceArgTabStop() {
	switch st.trackingArgTabStop {
	case argSpace:
		if st.context == contextCode && isWhitespaceStr(st.ch) {
			st.trackingArgTabStop = argArg
		}
	case argArg:
		if st.ch != "" && !isWhitespaceStr(st.ch) {
			st.trackingArgTabStop = argNotSearching
			if len(st.parenStack) > 0 {
				x := st.x
				st.parenStack[len(st.parenStack)-1].ArgX = &x
			}
		}
	}
}

// commit splices ch into the working line if it differs from the
// grapheme that was actually read, then advances x by ch's width.
func (st *State) commit(orig string, origWidth int) {
	newWidth := displayWidth(st.ch)

	if st.ch != orig {
		st.spliceRange(st.lineNo, st.x, st.x+model.Column(origWidth), st.ch)

		if st.cursorLine != nil && *st.cursorLine == st.lineNo && st.cursorX != nil && *st.cursorX > st.x {
			shifted := int(*st.cursorX) + (newWidth - origWidth)
			if shifted < 0 {
				shifted = 0
			}
			cx := model.Column(shifted)
			st.cursorX = &cx
		}

		st.indentDelta -= model.Delta(newWidth - origWidth)
	}

	st.x += model.Column(newWidth)
}
