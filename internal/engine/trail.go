package engine

import (
	"github.com/dshills/parinfer-go/internal/model"
	"github.com/dshills/parinfer-go/internal/width"
)

// lineText and setLineText are the only places that read/write a
// working line's text directly; everything else goes through them so
// the edited flag stays accurate.
func (st *State) lineText(lineNo model.LineNumber) string {
	return st.workingLines[lineNo].text
}

func (st *State) setLineText(lineNo model.LineNumber, text string) {
	line := st.workingLines[lineNo]
	line.text = text
	line.edited = true
	st.workingLines[lineNo] = line
}

// insertAt inserts text at display column col on lineNo.
func (st *State) insertAt(lineNo model.LineNumber, col model.Column, text string) {
	line := st.lineText(lineNo)
	at := width.ColumnByteIndex(line, int(col))
	st.setLineText(lineNo, line[:at]+text+line[at:])
}

// spliceRange replaces [startCol, endCol) on lineNo with text.
func (st *State) spliceRange(lineNo model.LineNumber, startCol, endCol model.Column, text string) {
	line := st.lineText(lineNo)
	from := width.ColumnByteIndex(line, int(startCol))
	to := width.ColumnByteIndex(line, int(endCol))
	st.setLineText(lineNo, line[:from]+text+line[to:])
}

// resetParenTrail starts a fresh, empty trail at (lineNo, x), discarding
// whatever trail (and clamped shadow) was previously live. Called after
// every closable grapheme and whenever a new trail explicitly begins
// (e.g. a valid leading closer in paren mode).
func (st *State) resetParenTrail(lineNo model.LineNumber, x model.Column) {
	st.parenTrail = model.ParenTrail{LineNo: lineNo, StartX: x, EndX: x}
	st.parenTrailOpeners = nil
	st.clamped = clampedParenTrail{}
}

func (st *State) rememberTrail(t model.ParenTrail) {
	st.rememberedTrails = append(st.rememberedTrails, t)
}

// finishNewParenTrail closes out the trail accumulated on st.lineNo.
func (st *State) finishNewParenTrail() error {
	switch {
	case st.context == contextString:
		st.parenTrail = model.ParenTrail{}
		st.parenTrailOpeners = nil

	case st.mode == model.ModeIndent:
		st.clampParenTrailToCursor()

	default: // paren mode
		if len(st.parenTrailOpeners) > 0 {
			top := st.parenTrailOpeners[len(st.parenTrailOpeners)-1]
			maxIndent := st.parenTrail.StartX
			top.MaxChildIndent = &maxIndent
		}
		if st.cursorLine == nil || *st.cursorLine != st.lineNo {
			st.cleanParenTrail()
		}
		st.rememberTrail(st.parenTrail)
	}
	return nil
}

// clampParenTrailToCursor holds a trail open at the cursor instead of
// letting it auto-finalize, so a user actively typing inside it isn't
// fought by the engine. Closers already committed to output stay in
// the text; the clamped shadow preserves their span/openers for
// anything downstream that wants to know they were there.
func (st *State) clampParenTrailToCursor() {
	if st.cursorLine == nil || *st.cursorLine != st.parenTrail.LineNo {
		return
	}
	if st.context == contextComment {
		return
	}
	if st.cursorX == nil || *st.cursorX <= st.parenTrail.StartX {
		return
	}

	st.clamped = clampedParenTrail{
		startX:  st.parenTrail.StartX,
		endX:    st.parenTrail.EndX,
		openers: st.parenTrailOpeners,
		set:     true,
	}

	cursorCol := *st.cursorX
	st.parenTrail.StartX = cursorCol
	st.parenTrail.EndX = cursorCol
	st.parenTrailOpeners = nil
}

// cleanParenTrail drops any stray whitespace from [StartX, EndX),
// keeping only the close-paren characters, and shortens EndX to match.
func (st *State) cleanParenTrail() {
	if st.parenTrail.IsEmpty() {
		return
	}
	line := st.lineText(st.parenTrail.LineNo)
	from := width.ColumnByteIndex(line, int(st.parenTrail.StartX))
	to := width.ColumnByteIndex(line, int(st.parenTrail.EndX))
	segment := line[from:to]

	closers := make([]byte, 0, len(segment))
	for i := 0; i < len(segment); i++ {
		if c := segment[i]; isCloseParenByte(c) {
			closers = append(closers, c)
		}
	}

	st.setLineText(st.parenTrail.LineNo, line[:from]+string(closers)+line[to:])
	st.parenTrail.EndX = st.parenTrail.StartX + model.Column(len(closers))
}

func isCloseParenByte(c byte) bool {
	return c == ')' || c == ']' || c == '}'
}
