// Package text provides writing-direction analysis for recognized text.
//
// Documents handled by this module mix Hebrew (right-to-left) and Latin
// (left-to-right) content, so reporting which script dominates a page is
// useful diagnostic output.
//
// # Text Direction
//
// The package supports bidirectional text with the [Direction] type:
//
//   - LTR - left-to-right (Latin, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// The [DetectDirection] function analyzes a string and returns its dominant
// direction by counting strong directional characters:
//
//	dir := text.DetectDirection("שלום Hello")
//
// [GetCharDirection] exposes the per-character classification, derived from
// the character's Unicode bidirectional class.
package text
