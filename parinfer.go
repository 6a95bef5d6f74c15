package parinfer

import (
	"github.com/dshills/parinfer-go/internal/change"
	"github.com/dshills/parinfer-go/internal/engine"
	"github.com/dshills/parinfer-go/internal/model"
)

// IndentMode infers closing parens from indentation.
func IndentMode(text string, opts Options) Answer {
	return engine.Run(text, opts, model.ModeIndent, false)
}

// ParenMode infers indentation from paren structure.
func ParenMode(text string, opts Options) Answer {
	return engine.Run(text, opts, model.ModeParen, false)
}

// SmartMode picks indent or paren behavior per edit based on cursor
// position, falling back to plain indent mode whenever a selection is
// active (Options.SelectionStartLine set).
func SmartMode(text string, opts Options) Answer {
	smart := opts.SelectionStartLine == nil
	return engine.Run(text, opts, model.ModeIndent, smart)
}

// Process dispatches req to the mode it names. The returned error is
// non-nil only for a caller-side contract violation — an unrecognized
// Mode — never for a parinfer failure such as an unmatched paren or an
// unclosed string; those are reported through the returned Answer's
// Success and Err fields instead, exactly as spec'd for the engine
// itself. This split exists so a caller can always tell "my request
// was malformed" apart from "the input doesn't parse."
//
// When req.Options carries PrevText and no explicit Changes, Process
// synthesizes a single Change by diffing PrevText against req.Text
// before dispatch.
func Process(req Request) (Answer, error) {
	opts := req.Options

	if len(opts.Changes) == 0 && opts.PrevText != nil {
		if c, ok := change.Compute(*opts.PrevText, req.Text); ok {
			opts.Changes = []Change{c}
		}
	}

	switch req.Mode {
	case ModeIndent:
		return IndentMode(req.Text, opts), nil
	case ModeParen:
		return ParenMode(req.Text, opts), nil
	case ModeSmart:
		return SmartMode(req.Text, opts), nil
	default:
		return Answer{}, &ErrUnknownMode{Mode: req.Mode}
	}
}
