// Package buffer implements the kanapad document model: lines of glyphs and
// the cursor/selection state machine that edits them.
//
// Coordinates are 1-based (Line, Col). Col addresses the slot the caret
// occupies, so on a line of n glyphs valid caret columns are 1..n+1.
//
// The caret is kept as metadata next to the content. Display copies with a
// Cursor glyph embedded at the caret slot are produced on demand by
// State.DisplayLine and Line.WithCursor.
package buffer
