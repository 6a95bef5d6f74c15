// Package change infers a single edit from a pair of texts: the
// smallest (start, old, new) span that explains every difference
// between a previous and current version of the same document.
//
// This is deliberately not a general diff algorithm — parinfer only
// ever needs the one collapsed span a normal single-cursor edit
// produces, and a multi-hunk diff would have to be collapsed back down
// to that shape anyway.
package change
