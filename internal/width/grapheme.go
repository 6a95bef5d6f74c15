package width

import "unicode/utf8"

// Grapheme is one cluster produced by Iterate: its raw bytes, the byte
// offset at which it starts within the original text, and its display
// width.
type Grapheme struct {
	Text       string
	ByteOffset int
	Width      int
}

// Iterate splits text into grapheme clusters: a base codepoint
// followed by zero or more continuation codepoints (see
// isContinuation). Invalid UTF-8 bytes are emitted as their own
// width-1, single-byte clusters and never absorb what follows them.
func Iterate(text string) []Grapheme {
	var out []Grapheme
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, Grapheme{Text: text[i : i+1], ByteOffset: i, Width: 1})
			i++
			continue
		}

		start := i
		w := RuneWidth(r)
		i += size

		for i < len(text) {
			r2, size2 := utf8.DecodeRuneInString(text[i:])
			if r2 == utf8.RuneError && size2 <= 1 {
				break
			}
			if !isContinuation(r2) {
				break
			}
			i += size2
		}

		out = append(out, Grapheme{Text: text[start:i], ByteOffset: start, Width: w})
	}
	return out
}

// ColumnByteIndex returns the byte offset within text of the first
// grapheme whose starting display column is >= col, or len(text) if
// col falls at or past the end of the line.
func ColumnByteIndex(text string, col int) int {
	acc := 0
	for _, g := range Iterate(text) {
		if acc >= col {
			return g.ByteOffset
		}
		acc += g.Width
	}
	return len(text)
}
