package engine

import (
	"strings"

	"github.com/dshills/parinfer-go/internal/model"
)

// checkIndent runs on every grapheme while trackingIndent is true, but
// only the first non-whitespace grapheme of the line actually commits
// to a branch; space/tab graphemes are trivial and fall through so
// tracking continues into the next character.
func (st *State) checkIndent() error {
	switch {
	case isCloseParenChar(st.ch):
		return st.onLeadingCloseParen()
	case st.ch == ";":
		st.onCommentLine()
		st.trackingIndent = false
	case st.ch != "\n" && st.ch != " " && st.ch != "\t":
		return st.onIndent()
	}
	return nil
}

// onLeadingCloseParen handles a close paren seen before any real
// indentation content on the line. Indent mode either defers to
// force_balance (strip it, no questions asked) or records the error
// and strips it; smart indent mode restarts in paren mode outright.
// Paren mode folds a valid closer into the trail directly (mirroring
// onMatchedClose) when the cursor isn't positioned to reshape it.
func (st *State) onLeadingCloseParen() error {
	if st.mode == model.ModeIndent {
		if !st.forceBalance {
			if st.smart {
				return errRestart
			}
			st.cacheError(model.ErrLeadingCloseParen)
		}
		st.skipChar = true
		return nil
	}

	closeCh := st.ch[0]
	valid := len(st.parenStack) > 0 && model.CloserFor(st.parenStack[len(st.parenStack)-1].Ch) == closeCh
	if !valid {
		if st.smart {
			st.skipChar = true
			return nil
		}
		return newEngineError(model.NewError(model.ErrUnmatchedCloseParen, st.x, st.lineNo, st.inputX, st.inputLineNo))
	}

	cursorHere := st.cursorLine != nil && *st.cursorLine == st.lineNo && st.cursorX != nil && *st.cursorX <= st.x
	if cursorHere {
		st.resetParenTrail(st.lineNo, st.x)
		return st.onIndent()
	}

	opener := st.parenStack[len(st.parenStack)-1]
	st.parenStack = st.parenStack[:len(st.parenStack)-1]
	st.parenTrailOpeners = append(st.parenTrailOpeners, opener)
	st.parenTrail.EndX = st.x + 1
	if st.returnParens {
		trailCopy := st.parenTrail
		opener.Closer = &model.Closer{LineNo: st.lineNo, X: st.x, Ch: closeCh, Trail: &trailCopy}
	}
	st.handledByIndent = true
	return nil
}

// onIndent fires on a line's first real content grapheme.
func (st *State) onIndent() error {
	x := st.x
	st.indentX = &x
	st.trackingIndent = false

	if st.quoteDanger {
		return newEngineError(model.NewError(model.ErrQuoteDanger, st.x, st.lineNo, st.inputX, st.inputLineNo))
	}

	if st.mode == model.ModeIndent {
		st.correctParenTrail(st.x)
		if top, ok := st.shouldAddOpenerIndent(); ok {
			st.addIndent(top.IndentDelta)
		}
		return nil
	}

	st.correctIndent()
	return nil
}

func (st *State) shouldAddOpenerIndent() (*model.Paren, bool) {
	if len(st.parenStack) == 0 {
		return nil, false
	}
	top := st.parenStack[len(st.parenStack)-1]
	return top, top.IndentDelta != st.indentDelta
}

// addIndent reshapes the current line's leading whitespace so that
// state's running indentDelta becomes targetDelta, shifting x,
// indentX, and the cursor (if present, on this line, at or right of
// the old indent) to match.
func (st *State) addIndent(targetDelta model.Delta) {
	diff := int(targetDelta - st.indentDelta)
	if diff == 0 {
		st.indentDelta = targetDelta
		return
	}

	newWidth := int(st.x) + diff
	if newWidth < 0 {
		newWidth = 0
	}
	st.spliceRange(st.lineNo, 0, st.x, strings.Repeat(" ", newWidth))

	if st.cursorLine != nil && *st.cursorLine == st.lineNo && st.cursorX != nil && *st.cursorX >= st.x {
		shifted := int(*st.cursorX) + diff
		if shifted < 0 {
			shifted = 0
		}
		cx := model.Column(shifted)
		st.cursorX = &cx
	}

	st.x = model.Column(newWidth)
	if st.indentX != nil {
		ix := model.Column(newWidth)
		st.indentX = &ix
	}
	st.indentDelta = targetDelta
}

// correctIndent clamps the current line's indentation into the live
// opener's (or, at top level, the root max_indent's) allowed window,
// applying any pending opener indent shift first.
func (st *State) correctIndent() {
	var minX model.Column
	var maxX model.Column
	var hasMax bool

	if len(st.parenStack) > 0 {
		opener := st.parenStack[len(st.parenStack)-1]
		if opener.IndentDelta != st.indentDelta {
			st.addIndent(opener.IndentDelta)
		}
		minX = opener.X + 1
		if opener.MaxChildIndent != nil {
			maxX = *opener.MaxChildIndent
			hasMax = true
		}
	} else if st.maxIndent != nil {
		maxX = *st.maxIndent
		hasMax = true
	}

	newX := st.x
	if newX < minX {
		newX = minX
	}
	if hasMax && newX > maxX {
		newX = maxX
	}
	if newX == st.x {
		return
	}

	st.spliceRange(st.lineNo, 0, st.x, strings.Repeat(" ", int(newX)))
	if st.cursorLine != nil && *st.cursorLine == st.lineNo && st.cursorX != nil && *st.cursorX >= st.x {
		shifted := int(*st.cursorX) + int(newX-st.x)
		if shifted < 0 {
			shifted = 0
		}
		cx := model.Column(shifted)
		st.cursorX = &cx
	}
	st.x = newX
	ix := newX
	st.indentX = &ix
}

// getParentOpenerIndex walks the paren stack from innermost outward,
// deciding at each depth whether that opener remains parent of the
// current line's indentation under the adoption/fragmentation rule,
// and returns the first depth that qualifies (0 meaning the innermost
// opener is parent; len(parenStack) meaning none is — top level).
func (st *State) getParentOpenerIndex(indentX model.Column) int {
	prevIndentX := indentX - model.Column(st.indentDelta)

	for d := 0; d < len(st.parenStack); d++ {
		opener := st.parenStack[len(st.parenStack)-1-d]

		currOutside := opener.X < indentX
		prevOutside := opener.X-model.Column(opener.IndentDelta) < prevIndentX

		var isParent bool
		switch {
		case currOutside && prevOutside:
			isParent = true
		case !currOutside && !prevOutside:
			isParent = false
		case prevOutside && !currOutside:
			// fragmentation: this opener only keeps parenthood if
			// nothing on the line actually shifted.
			isParent = st.indentDelta == 0
		default:
			// adoption: previously inside, now outside. When the next
			// opener out has shifted further than this one, this
			// opener stays parent and its IndentDelta is pinned to
			// zero; otherwise it is not parent. With no outer opener
			// left, it is adopted the same way.
			if d+1 < len(st.parenStack) {
				nextOuter := st.parenStack[len(st.parenStack)-1-(d+1)]
				if nextOuter.IndentDelta > opener.IndentDelta {
					isParent = true
					opener.IndentDelta = 0
				}
			} else {
				isParent = true
				opener.IndentDelta = 0
			}
		}

		if isParent {
			return d
		}
	}
	return len(st.parenStack)
}

// correctParenTrail pops every opener that indentX has moved outside
// of, writing their closers into the trail (which may belong to an
// earlier line, left dangling since its own last closable grapheme).
func (st *State) correctParenTrail(indentX model.Column) {
	popCount := st.getParentOpenerIndex(indentX)
	if popCount == 0 {
		return
	}

	toClose := make([]*model.Paren, popCount)
	closers := make([]byte, popCount)
	for i := 0; i < popCount; i++ {
		opener := st.parenStack[len(st.parenStack)-1-i]
		toClose[i] = opener
		closers[i] = model.CloserFor(opener.Ch)
	}
	st.parenStack = st.parenStack[:len(st.parenStack)-popCount]
	st.parenTrailOpeners = append(st.parenTrailOpeners, toClose...)

	st.insertAt(st.parenTrail.LineNo, st.parenTrail.StartX, string(closers))
	st.parenTrail.EndX = st.parenTrail.StartX + model.Column(popCount)

	if st.returnParens {
		for i, opener := range toClose {
			trailCopy := st.parenTrail
			opener.Closer = &model.Closer{
				LineNo: st.parenTrail.LineNo,
				X:      st.parenTrail.StartX + model.Column(i),
				Ch:     closers[i],
				Trail:  &trailCopy,
			}
		}
	}

	st.rememberTrail(st.parenTrail)
}

// onCommentLine lets a comment-only line pick up the same indent shift
// real code would. In paren mode it first restores any
// already-collected trail openers to the stack, temporarily, before
// consulting getParentOpenerIndex; indent mode consults the stack as
// it is.
func (st *State) onCommentLine() {
	pushed := 0
	if st.mode == model.ModeParen {
		for i := len(st.parenTrailOpeners) - 1; i >= 0; i-- {
			st.parenStack = append(st.parenStack, st.parenTrailOpeners[i])
			pushed++
		}
	}

	depth := st.getParentOpenerIndex(st.x)
	if depth < len(st.parenStack) {
		opener := st.parenStack[len(st.parenStack)-1-depth]
		if opener.IndentDelta != st.indentDelta {
			st.addIndent(opener.IndentDelta)
		}
	}

	if pushed > 0 {
		st.parenStack = st.parenStack[:len(st.parenStack)-pushed]
	}
}
