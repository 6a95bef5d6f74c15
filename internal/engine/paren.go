package engine

import "github.com/dshills/parinfer-go/internal/model"

// pushParen records a newly seen opener on the stack, attaching it to
// the paren tree (its current top-of-stack parent, or the root list
// when the stack is empty) whenever ReturnParens was requested.
func (st *State) pushParen(ch byte) {
	p := &model.Paren{
		LineNo:      st.lineNo,
		X:           st.x,
		Ch:          ch,
		IndentDelta: st.indentDelta,
		InputLineNo: st.inputLineNo,
		InputX:      st.inputX,
	}

	if st.returnParens {
		if len(st.parenStack) > 0 {
			parent := st.parenStack[len(st.parenStack)-1]
			parent.Children = append(parent.Children, p)
		} else {
			st.parens = append(st.parens, p)
		}
	}

	st.parenStack = append(st.parenStack, p)
}

// onCloseParen dispatches a close-paren grapheme seen in code context
// outside the leading-close-paren handling in checkIndent.
func (st *State) onCloseParen() error {
	closeCh := st.ch[0]
	if len(st.parenStack) > 0 && model.CloserFor(st.parenStack[len(st.parenStack)-1].Ch) == closeCh {
		return st.onMatchedClose(closeCh)
	}
	return st.onUnmatchedClose(closeCh)
}

// onMatchedClose pops the matching opener into the current trail and
// extends the trail to cover this closer. In smart indent mode, a
// closer sitting in its opener's cursor-holding window is instead
// clamped: the just-collected trail is stashed and a fresh trail
// starts right after this character.
func (st *State) onMatchedClose(closeCh byte) error {
	opener := st.parenStack[len(st.parenStack)-1]
	st.parenStack = st.parenStack[:len(st.parenStack)-1]

	st.parenTrailOpeners = append(st.parenTrailOpeners, opener)
	st.parenTrail.EndX = st.x + 1

	if st.returnParens {
		trailCopy := st.parenTrail
		opener.Closer = &model.Closer{LineNo: st.lineNo, X: st.x, Ch: closeCh, Trail: &trailCopy}
	}

	if st.mode == model.ModeIndent && st.smart {
		holding, err := st.checkCursorHolding(opener)
		if err != nil {
			return err
		}
		if holding {
			shadow := clampedParenTrail{
				startX:  st.parenTrail.StartX,
				endX:    st.parenTrail.EndX,
				openers: append([]*model.Paren(nil), st.parenTrailOpeners...),
				set:     true,
			}
			st.resetParenTrail(st.lineNo, st.x+1)
			st.clamped = shadow
		}
	}

	return nil
}

// onUnmatchedClose implements the two modes' divergent handling of a
// closer that doesn't match the stack: paren mode either elides it (a
// smart leading stray) or fails outright; indent mode always deletes
// it from output and defers the error to end of line, where it is
// raised only if the closer sat left of the line's paren trail.
func (st *State) onUnmatchedClose(closeCh byte) error {
	if st.mode == model.ModeParen {
		if st.indentX == nil && st.smart {
			st.ch = ""
			return nil
		}
		return newEngineError(model.NewError(model.ErrUnmatchedCloseParen, st.x, st.lineNo, st.inputX, st.inputLineNo))
	}

	st.cacheError(model.ErrUnmatchedCloseParen)
	if len(st.parenStack) > 0 {
		opener := st.parenStack[len(st.parenStack)-1]
		if _, ok := st.errCache[model.ErrUnmatchedOpenParen]; !ok {
			st.errCache[model.ErrUnmatchedOpenParen] = errorPos{
				x:           opener.X,
				lineNo:      opener.LineNo,
				inputX:      opener.InputX,
				inputLineNo: opener.InputLineNo,
			}
		}
	}
	st.ch = ""
	return nil
}

// checkCursorHolding reports whether the cursor sits in opener's
// holding window on its own line. When no edits are in play and the
// previous cursor was holding but the current one no longer is, the
// user has moved away mid-edit in a way smart mode can't reconcile
// incrementally, so the whole call restarts in paren mode.
func (st *State) checkCursorHolding(opener *model.Paren) (bool, error) {
	holding := st.isHolding(opener, st.cursorLine, st.cursorX)

	if len(st.changeMap) == 0 && st.prevCursorLine != nil {
		prevHolding := st.isHolding(opener, st.prevCursorLine, st.prevCursorX)
		if prevHolding && !holding {
			return false, errRestart
		}
	}

	return holding, nil
}

func (st *State) isHolding(opener *model.Paren, cursorLine *model.LineNumber, cursorX *model.Column) bool {
	if cursorLine == nil || cursorX == nil || *cursorLine != opener.LineNo {
		return false
	}

	var holdMinX model.Column
	if len(st.parenStack) > 0 {
		holdMinX = st.parenStack[len(st.parenStack)-1].X + 1
	}
	holdMaxX := opener.X

	return *cursorX >= holdMinX && *cursorX <= holdMaxX
}
