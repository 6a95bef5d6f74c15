// Command parinfer runs the indent/paren/smart engine over stdin and
// writes the result to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rivo/uniseg"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/parinfer-go"
	"github.com/dshills/parinfer-go/internal/width"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parinfer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		mode          string
		cursorX       int
		cursorLine    int
		forceBalance  bool
		returnParens  bool
		partialResult bool
		optionsJSON   string
		emitJSON      bool
		showWidths    bool
		logLevel      string
	)

	fs.StringVar(&mode, "mode", "smart", "processing mode: indent, paren, or smart")
	fs.IntVar(&cursorX, "cursor-x", 0, "cursor column (requires -cursor-line)")
	fs.IntVar(&cursorLine, "cursor-line", -1, "cursor line, 0-based; enables the cursor at column -cursor-x")
	fs.BoolVar(&forceBalance, "force-balance", false, "silently drop a leading close-paren instead of failing")
	fs.BoolVar(&returnParens, "return-parens", false, "include the paren tree in JSON output")
	fs.BoolVar(&partialResult, "partial-result", false, "on failure, return the partially-edited text instead of the original")
	fs.StringVar(&optionsJSON, "options-json", "", "JSON object overriding individual Options fields")
	fs.BoolVar(&emitJSON, "json", false, "emit the full Answer as JSON instead of plain text")
	fs.BoolVar(&showWidths, "widths", false, "print per-line grapheme and display-width counts to stderr and exit")
	fs.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "parinfer - indent/paren/smart text reconciliation\n\n")
		fmt.Fprintf(stderr, "Usage: parinfer [options] < input > output\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := NewLogger(ParseLogLevel(logLevel), stderr)

	input, err := io.ReadAll(stdin)
	if err != nil {
		logger.Error("reading stdin: %v", err)
		return 1
	}
	text := string(input)

	if showWidths {
		printWidths(stderr, text)
		return 0
	}

	haveCursor := cursorLine >= 0

	req := parinfer.Request{
		Mode: parinfer.Mode(mode),
		Text: text,
		Options: parinfer.Options{
			ForceBalance:  forceBalance,
			ReturnParens:  returnParens,
			PartialResult: partialResult,
		},
	}
	if haveCursor {
		x := parinfer.Column(cursorX)
		line := parinfer.LineNumber(cursorLine)
		req.Options.CursorX = &x
		req.Options.CursorLine = &line
	}

	if optionsJSON != "" {
		if err := applyOptionsJSON(&req.Options, optionsJSON); err != nil {
			logger.Error("parsing -options-json: %v", err)
			return 2
		}
	}

	logger.Debug("dispatching mode=%s len(text)=%d", req.Mode, len(req.Text))

	ans, err := parinfer.Process(req)
	if err != nil {
		logger.Error("%v", err)
		return 2
	}

	if emitJSON {
		out, encErr := answerJSON(ans)
		if encErr != nil {
			logger.Error("encoding answer: %v", encErr)
			return 1
		}
		fmt.Fprintln(stdout, out)
	} else {
		fmt.Fprint(stdout, ans.Text)
	}

	if !ans.Success {
		logger.Warn("%s at line %d col %d", ans.Err.Name, ans.Err.LineNo, ans.Err.X)
		return 1
	}
	return 0
}

// applyOptionsJSON overlays fields present in raw onto opts. Only keys
// the caller actually included are touched, so an empty object is a
// no-op and a partial object leaves the flag-derived defaults in place.
func applyOptionsJSON(opts *parinfer.Options, raw string) error {
	if !gjson.Valid(raw) {
		return fmt.Errorf("not valid JSON: %s", raw)
	}
	parsed := gjson.Parse(raw)

	if v := parsed.Get("prevText"); v.Exists() {
		s := v.String()
		opts.PrevText = &s
	}
	if v := parsed.Get("cursorX"); v.Exists() {
		x := parinfer.Column(v.Int())
		opts.CursorX = &x
	}
	if v := parsed.Get("cursorLine"); v.Exists() {
		line := parinfer.LineNumber(v.Int())
		opts.CursorLine = &line
	}
	if v := parsed.Get("prevCursorX"); v.Exists() {
		x := parinfer.Column(v.Int())
		opts.PrevCursorX = &x
	}
	if v := parsed.Get("prevCursorLine"); v.Exists() {
		line := parinfer.LineNumber(v.Int())
		opts.PrevCursorLine = &line
	}
	if v := parsed.Get("selectionStartLine"); v.Exists() {
		line := parinfer.LineNumber(v.Int())
		opts.SelectionStartLine = &line
	}
	if changes := parsed.Get("changes"); changes.IsArray() {
		var cs []parinfer.Change
		for _, c := range changes.Array() {
			cs = append(cs, parinfer.Change{
				X:       parinfer.Column(c.Get("x").Int()),
				LineNo:  parinfer.LineNumber(c.Get("lineNo").Int()),
				OldText: c.Get("oldText").String(),
				NewText: c.Get("newText").String(),
			})
		}
		opts.Changes = cs
	}
	return nil
}

// answerJSON builds the wire form of ans field by field with sjson,
// rather than relying on struct tags, so the vocabulary stays exactly
// the kebab-case one the engine already promises (Answer.Err.Name and
// friends carry no json tags of their own).
func answerJSON(ans parinfer.Answer) (string, error) {
	out := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, value)
	}

	set("text", ans.Text)
	set("success", ans.Success)
	if ans.CursorX != nil {
		set("cursorX", int(*ans.CursorX))
	}
	if ans.CursorLine != nil {
		set("cursorLine", int(*ans.CursorLine))
	}
	if ans.Err != nil {
		set("error.name", string(ans.Err.Name))
		set("error.message", ans.Err.Msg)
		set("error.x", int(ans.Err.X))
		set("error.lineNo", int(ans.Err.LineNo))
		set("error.inputX", int(ans.Err.InputX))
		set("error.inputLineNo", int(ans.Err.InputLineNo))
	}
	for i, t := range ans.TabStops {
		base := fmt.Sprintf("tabStops.%d", i)
		set(base+".ch", t.Ch)
		set(base+".x", int(t.X))
		set(base+".lineNo", int(t.LineNo))
		if t.ArgX != nil {
			set(base+".argX", int(*t.ArgX))
		}
	}
	if len(ans.Parens) > 0 {
		out, err = setParens(out, "parens", ans.Parens)
	}

	return out, err
}

func setParens(json, path string, parens []*parinfer.Paren) (string, error) {
	var err error
	for i, p := range parens {
		base := fmt.Sprintf("%s.%d", path, i)
		json, err = sjson.Set(json, base+".ch", string(p.Ch))
		if err != nil {
			return json, err
		}
		json, err = sjson.Set(json, base+".x", int(p.X))
		if err != nil {
			return json, err
		}
		json, err = sjson.Set(json, base+".lineNo", int(p.LineNo))
		if err != nil {
			return json, err
		}
		if p.Closer != nil {
			json, err = sjson.Set(json, base+".closer.x", int(p.Closer.X))
			if err != nil {
				return json, err
			}
			json, err = sjson.Set(json, base+".closer.lineNo", int(p.Closer.LineNo))
			if err != nil {
				return json, err
			}
		}
		if len(p.Children) > 0 {
			json, err = setParens(json, base+".children", p.Children)
			if err != nil {
				return json, err
			}
		}
	}
	return json, nil
}

// printWidths reports, per input line, how many grapheme clusters
// uniseg counts versus the engine's own display-width sum — a
// diagnostic for callers debugging why a cursor column landed
// somewhere unexpected in text with wide or combining characters.
func printWidths(w io.Writer, text string) {
	lineNo := 0
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			seg := text[start:i]
			cols := 0
			for _, g := range width.Iterate(seg) {
				cols += g.Width
			}
			fmt.Fprintf(w, "line %d: %d graphemes, display width %d\n", lineNo, uniseg.GraphemeClusterCount(seg), cols)
			start = i + 1
			lineNo++
		}
	}
}
