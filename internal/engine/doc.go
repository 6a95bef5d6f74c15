// Package engine implements the parinfer state machine: a single-pass,
// column-aware walk over a document's graphemes that maintains a paren
// stack, computes per-line paren trails, classifies code/comment/string
// context, consumes edit-derived indent deltas, and rewrites the
// working text to satisfy the mode's invariants.
//
// One State is built per call to Run and is never shared across calls
// or goroutines — see the package-level Run doc comment for the
// restart-to-paren-mode control flow that can discard a State mid-call
// and start a fresh one.
package engine
