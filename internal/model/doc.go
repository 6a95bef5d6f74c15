// Package model defines the value types exchanged between the parinfer
// processing engine and its callers: requests, options, the computed
// answer, and the tree of parens and paren trails the engine tracks
// while it runs.
//
// Every type here is a plain value or a small owned tree; none of them
// hold locks or background state. A single Request produces a single
// Answer — the types in this package describe that one round trip, not
// a long-lived session.
package model
