package change

import (
	"strings"

	"github.com/dshills/parinfer-go/internal/model"
	"github.com/dshills/parinfer-go/internal/width"
)

// runePos is one decoded codepoint plus the byte offset it starts at.
type runePos struct {
	r      rune
	offset int
}

func decode(s string) []runePos {
	out := make([]runePos, 0, len(s))
	for i, r := range s {
		out = append(out, runePos{r: r, offset: i})
	}
	return out
}

func byteOffsetAt(pos []runePos, idx int, sLen int) int {
	if idx >= len(pos) {
		return sLen
	}
	return pos[idx].offset
}

// Compute returns the single Change that explains every difference
// between prev and curr, or ok=false if the two texts are identical.
//
// The scan is codepoint-based (matching the spec's forward/reverse
// scan rule exactly); X and LineNo in the result are then translated
// into display coordinates via the width package, since every position
// the engine consumes is a display column, never a byte or rune index.
func Compute(prev, curr string) (result model.Change, ok bool) {
	if prev == curr {
		return model.Change{}, false
	}

	prevPos := decode(prev)
	currPos := decode(curr)
	pn, cn := len(prevPos), len(currPos)

	fwd := 0
	for fwd < pn && fwd < cn && prevPos[fwd].r == currPos[fwd].r {
		fwd++
	}

	prevEnd, currEnd := pn, cn
	for prevEnd > fwd && currEnd > fwd &&
		prevPos[prevEnd-1].r == currPos[currEnd-1].r {
		prevEnd--
		currEnd--
	}

	prevStartOff := byteOffsetAt(prevPos, fwd, len(prev))
	prevEndOff := byteOffsetAt(prevPos, prevEnd, len(prev))
	currStartOff := byteOffsetAt(currPos, fwd, len(curr))
	currEndOff := byteOffsetAt(currPos, currEnd, len(curr))

	lineNo, col := position(prev, prevStartOff)

	return model.Change{
		X:       model.Column(col),
		LineNo:  model.LineNumber(lineNo),
		OldText: prev[prevStartOff:prevEndOff],
		NewText: curr[currStartOff:currEndOff],
	}, true
}

// position returns the 0-based line number and display column of byte
// offset off within s.
func position(s string, off int) (line, col int) {
	prefix := s[:off]
	line = strings.Count(prefix, "\n")

	lineStart := 0
	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		lineStart = idx + 1
	}

	for _, g := range width.Iterate(s[lineStart:off]) {
		col += g.Width
	}
	return line, col
}
