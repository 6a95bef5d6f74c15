package width

// runeRange is an inclusive [Lo, Hi] codepoint range.
type runeRange struct {
	Lo, Hi rune
}

func (r runeRange) contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

func inRanges(c rune, ranges []runeRange) bool {
	// Linear scan: these tables are small (a few dozen entries) and
	// every lookup is on a single codepoint from a single grapheme, so
	// a sorted binary search buys nothing measurable here.
	for _, r := range ranges {
		if r.contains(c) {
			return true
		}
	}
	return false
}

// wideRanges are the fullwidth/CJK ranges that display as two cells.
var wideRanges = []runeRange{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0x2FDF},
	{0x3000, 0x303E},
	{0x3040, 0x309F},
	{0x30A0, 0x30FF},
	{0x3100, 0x312F},
	{0x31A0, 0x31BF},
	{0x3200, 0x33FF},
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xAC00, 0xD7AF},
	{0xF900, 0xFAFF},
	{0xFE30, 0xFE4F},
	{0xFF01, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2A6DF},
}

// combiningRanges are the enumerated combining mark ranges (general
// category M) that attach to the preceding base codepoint and
// contribute zero width.
var combiningRanges = []runeRange{
	{0x0300, 0x036F},
	{0x0483, 0x0489},
	{0x0591, 0x05BD},
	{0x05BF, 0x05BF},
	{0x05C1, 0x05C2},
	{0x05C4, 0x05C5},
	{0x05C7, 0x05C7},
	{0x0610, 0x061A},
	{0x064B, 0x065F},
	{0x0670, 0x0670},
	{0x06D6, 0x06DC},
	{0x06DF, 0x06E4},
	{0x06E7, 0x06E8},
	{0x06EA, 0x06ED},
	{0x0900, 0x0903},
	{0x093A, 0x094F},
	{0x0951, 0x0957},
	{0x0962, 0x0963},
	{0x0E31, 0x0E31},
	{0x0E34, 0x0E3A},
	{0x0E47, 0x0E4E},
	{0x1AB0, 0x1AFF},
	{0x1DC0, 0x1DFF},
	{0x20D0, 0x20FF},
	{0xFE20, 0xFE2F},
}

// Explicit zero-width singles: zero-width space, zero-width
// non-joiner, zero-width joiner, byte-order mark.
const (
	zwsp rune = 0x200B
	zwnj rune = 0x200C
	zwj  rune = 0x200D
	bom  rune = 0xFEFF
)

func isExplicitZeroWidth(r rune) bool {
	return r == zwsp || r == zwnj || r == zwj || r == bom
}

// isContinuation reports whether r is one of the codepoints that
// attach to a preceding base codepoint instead of starting a new
// grapheme cluster: a combining mark, or one of the explicit
// zero-width exceptions. Both cases also contribute zero display
// width.
func isContinuation(r rune) bool {
	return isExplicitZeroWidth(r) || inRanges(r, combiningRanges)
}

func isWide(r rune) bool {
	return inRanges(r, wideRanges)
}
