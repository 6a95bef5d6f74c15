// Package parinfer keeps the parenthesis structure of Clojure-like
// source text in sync with its indentation.
//
// Given source text plus optional cursor context, Process produces new
// text in which either closing parens are inferred from indentation
// (indent mode), indentation is inferred from paren structure (paren
// mode), or the choice is made dynamically based on what changed since
// the last call (smart mode).
//
//	ans, err := parinfer.Process(parinfer.Request{
//		Mode: parinfer.ModeIndent,
//		Text: "(def foo\n  bar",
//	})
//	if err != nil {
//		// caller-side contract violation, e.g. an unknown Mode
//	}
//	if !ans.Success {
//		// ans.Err names what went wrong and where
//	}
//	fmt.Printf("%q\n", ans.Text) // "(def foo\n  bar)"
//
// The engine only understands Clojure syntax: `;` starts a line
// comment, `"` delimits a string, and `\` is the sole character
// escape. It is restricted to a single call per transformation — there
// is no incremental or streaming mode.
package parinfer
