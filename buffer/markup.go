package buffer

import (
	"strings"

	"golang.org/x/net/html"
)

// PillMarkup wraps label in the button markup used for pill widgets.
func PillMarkup(label string) string {
	return `<button class="pill">` + html.EscapeString(label) + `</button>`
}

// ListingMarkup renders items as a single-line listing widget.
func ListingMarkup(items []string) string {
	var sb strings.Builder
	sb.WriteString("<div>")
	for _, it := range items {
		sb.WriteString("<span>")
		sb.WriteString(html.EscapeString(it))
		sb.WriteString(" / </span>")
	}
	sb.WriteString("</div>")
	return sb.String()
}

// NoticeMarkup renders a bold title followed by message.
func NoticeMarkup(title, message string) string {
	return `<div><span style="font-weight: bold;">` + html.EscapeString(title) + `</span>` +
		html.EscapeString(message) + `</div>`
}

// WidgetText keeps the text nodes of markup and collapses whitespace, giving
// the text a terminal renderer can show for a widget. Widget markup comes
// from callers, so it is tokenized rather than pattern-matched.
func WidgetText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
