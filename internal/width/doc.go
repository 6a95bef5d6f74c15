// Package width iterates UTF-8 text as grapheme clusters — one base
// codepoint plus any trailing combining marks — and assigns each
// cluster a display width, so the engine can keep every column it
// tracks in display cells rather than bytes.
//
// The cluster and width rules here are the closed, explicitly
// enumerated rule the engine's spec requires, not a general UAX#29
// grapheme-cluster or UAX#11 East-Asian-Width algorithm: codepoints
// outside the enumerated ranges are deliberately left narrow (width 1)
// rather than guessed at, so behavior never silently drifts as the
// Unicode database grows.
package width
