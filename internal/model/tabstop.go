package model

// TabStop is one landing point a cursor could align to, built fresh
// whenever the engine processes the selection-start or cursor line.
// It names the character that produced the stop (an opener, usually)
// and its column, plus — once argument tracking resolves — the column
// of that opener's first argument.
type TabStop struct {
	Ch     string
	X      Column
	LineNo LineNumber
	ArgX   *Column
}
