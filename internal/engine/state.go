package engine

import (
	"strings"

	"github.com/dshills/parinfer-go/internal/model"
)

// context classifies what kind of text the engine is currently
// walking through on the current line.
type context int

const (
	contextCode context = iota
	contextComment
	contextString
)

// escapeState tracks backslash escaping within code/string context.
type escapeState int

const (
	escapeNormal escapeState = iota
	escapeEscaping
	escapeEscaped
)

// argTabStopState tracks the lookahead used to find an opener's first
// argument column for TabStop.ArgX.
type argTabStopState int

const (
	argNotSearching argTabStopState = iota
	argSpace
	argArg
)

// workingLine is a tagged variant: a line either still reads exactly
// as it did in the original input (borrowed) or has been spliced at
// least once (owned). The tag itself is just a bool in Go — there is
// no manual free path to disambiguate — but the distinction is kept
// explicit because only an owned line may ever need re-splicing
// relative to input byte offsets that no longer line up with it.
type workingLine struct {
	text   string
	edited bool
}

// clampedParenTrail is the shadow copy of a ParenTrail preserved when
// checkCursorHolding or indent-mode cursor clamping moves closers out
// of the trail that will be remembered for this line.
type clampedParenTrail struct {
	startX  model.Column
	endX    model.Column
	openers []*model.Paren
	set     bool
}

// errorPos is a cached site for a deferred error name: the first
// position (in both working and input coordinates) at which the
// condition was observed on the current line.
type errorPos struct {
	x           model.Column
	lineNo      model.LineNumber
	inputX      model.Column
	inputLineNo model.LineNumber
}

// State is the engine's exclusively-owned working set for one call to
// Run. It is never read or written from more than one goroutine, and
// never outlives the call that built it.
type State struct {
	mode  model.Mode
	smart bool

	originalText string
	lineEnding   string

	inputLines []string
	inputLineNo model.LineNumber
	inputX      model.Column

	workingLines []workingLine

	lineNo    model.LineNumber
	x         model.Column
	ch        string
	indentX   *model.Column

	parenStack []*model.Paren
	tabStops   []model.TabStop

	parenTrail        model.ParenTrail
	parenTrailOpeners []*model.Paren
	clamped           clampedParenTrail

	rememberedTrails []model.ParenTrail
	parens           []*model.Paren

	cursorX    *model.Column
	cursorLine *model.LineNumber

	// origCursorX/origCursorLine are the caller-supplied cursor,
	// untouched by any splice the engine performs. buildAnswer reports
	// these instead of the live cursor on a non-partial error result.
	origCursorX    *model.Column
	origCursorLine *model.LineNumber

	prevCursorX    *model.Column
	prevCursorLine *model.LineNumber

	selectionStartLine *model.LineNumber

	changeMap map[changeKey]model.Change

	context   context
	commentX  *model.Column
	escape    escapeState
	skipChar  bool

	// handledByIndent marks a grapheme checkIndent has already fully
	// dispatched (a non-cursor leading closer folded straight into the
	// paren trail in paren mode); processChar commits it unchanged
	// without running onContext a second time.
	handledByIndent bool

	quoteDanger    bool
	trackingIndent bool

	success       bool
	finalErr      *model.Error
	partialResult bool
	forceBalance  bool
	returnParens  bool

	maxIndent *model.Column
	indentDelta model.Delta

	trackingArgTabStop argTabStopState

	errCache map[model.ErrorName]errorPos
}

// changeKey identifies one entry in the change map: (line, column) in
// input coordinates.
type changeKey struct {
	line model.LineNumber
	col  model.Column
}

// newState builds a fresh State for one processText call. text and
// options are never mutated; every field State needs beyond them is
// computed here.
func newState(text string, opts model.Options, mode model.Mode, smart bool) *State {
	st := &State{
		mode:         mode,
		smart:        smart,
		originalText: text,
		lineEnding:   lineEndingOf(text),
		inputLines:   splitLines(text),
		changeMap:    buildChangeMap(opts.Changes),
		trackingIndent: true,
		partialResult:  opts.PartialResult,
		forceBalance:   opts.ForceBalance,
		returnParens:   opts.ReturnParens,
		errCache:       make(map[model.ErrorName]errorPos),
		lineNo:         -1,
	}

	st.workingLines = make([]workingLine, len(st.inputLines))
	for i, l := range st.inputLines {
		st.workingLines[i] = workingLine{text: l, edited: false}
	}

	if opts.HasCursor() {
		x := *opts.CursorX
		ln := *opts.CursorLine
		st.cursorX = &x
		st.cursorLine = &ln
		ox := x
		oln := ln
		st.origCursorX = &ox
		st.origCursorLine = &oln
	}
	if opts.HasPrevCursor() {
		x := *opts.PrevCursorX
		ln := *opts.PrevCursorLine
		st.prevCursorX = &x
		st.prevCursorLine = &ln
	}
	if opts.SelectionStartLine != nil {
		ln := *opts.SelectionStartLine
		st.selectionStartLine = &ln
	}

	return st
}

func lineEndingOf(text string) string {
	if strings.ContainsRune(text, '\r') {
		return "\r\n"
	}
	return "\n"
}

// splitLines splits text into lines on \n, stripping a trailing \r
// from each line.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}

func buildChangeMap(changes []model.Change) map[changeKey]model.Change {
	m := make(map[changeKey]model.Change, len(changes))
	for _, c := range changes {
		// Last-writer-wins: collisions are not expected, but this
		// keeps behavior defined if a caller supplies duplicates.
		m[changeKey{line: c.LineNo, col: c.X}] = c
	}
	return m
}
