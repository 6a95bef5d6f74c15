package engine

import "github.com/dshills/parinfer-go/internal/width"

// displayWidth sums the grapheme display widths of s. Used for
// strings the engine itself builds (a replacement character, a change
// span) rather than a single already-measured grapheme.
func displayWidth(s string) int {
	w := 0
	for _, g := range width.Iterate(s) {
		w += g.Width
	}
	return w
}

func isCloseParenChar(s string) bool {
	return s == ")" || s == "]" || s == "}"
}

func isOpenParenChar(s string) bool {
	return s == "(" || s == "[" || s == "{"
}

func isWhitespaceStr(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
