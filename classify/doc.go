// Package classify recognizes the markdown-like structure of a single line.
//
// Classify is pure: it looks only at the flat text of one line (caret marker
// and widget markup included) and reports a kind, display fragments and style
// hints for the line's container. Markers use a no-break space (U+00A0) as
// separator, which is what the editor inserts for the space key.
package classify
