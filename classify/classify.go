package classify

import (
	"regexp"
	"strings"
)

// NBSP separates block markers from their content.
const NBSP = "\u00a0"

// Kind is the structural class of a line.
type Kind uint8

const (
	Paragraph Kind = iota
	Heading
	Bullet
	Numbered
	Code
	Warning
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	case Numbered:
		return "numbered"
	case Code:
		return "code"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

const (
	// BulletMark replaces the "-" marker of bullet items.
	BulletMark = "・"
	// CodeFence opens a code line when followed by NBSP.
	CodeFence = "```"
	// InputPlaceholder is the opaque fragment emitted before code text.
	InputPlaceholder = `<input style=""></input>`
)

// Fragment is one piece of a classified line.
type Fragment struct {
	Text  string
	Style StyleHint
	// Placeholder marks an injected fragment that is not line content.
	Placeholder bool
}

// Result is the classification of one line.
type Result struct {
	Kind Kind
	// Level is the heading level, 1 to 4.
	Level int
	// Indent is the number of leading ASCII spaces divided by four.
	Indent int
	// Marker is the prefix that was recognized at the start of the line,
	// and Replacement what the display shows in its place.
	Marker      string
	Replacement string

	Fragments []Fragment
	Container StyleHint
}

// Text joins the non-placeholder fragments.
func (r Result) Text() string {
	var sb strings.Builder
	for _, f := range r.Fragments {
		if !f.Placeholder {
			sb.WriteString(f.Text)
		}
	}
	return sb.String()
}

var numberedRE = regexp.MustCompile(`^\d+\.` + NBSP)

// headingMarkers is indexed by level. Each ends in NBSP, so none is a prefix
// of another and the test order does not matter.
var headingMarkers = [...]string{
	4: "####" + NBSP,
	3: "###" + NBSP,
	2: "##" + NBSP,
	1: "#" + NBSP,
}

// Classify reports the structure of line.
//
// Rules apply in order: headings, bullet, numbered list, code, WARNING,
// paragraph. Heading and bullet markers are matched at the very start of the
// line; the numbered pattern is matched after the leading spaces.
func Classify(line string) Result {
	indent := leadingSpaces(line) / 4
	trimmed := line[leadingSpaces(line):]

	for level := 1; level <= 4; level++ {
		marker := headingMarkers[level]
		if strings.HasPrefix(line, marker) {
			return Result{
				Kind:   Heading,
				Level:  level,
				Indent: indent,
				Marker: marker,
				Fragments: []Fragment{{
					Text:  strings.Replace(line, marker, "", level),
					Style: headingText[level],
				}},
				Container: headingContainer[level],
			}
		}
	}

	if bullet := "-" + NBSP; strings.HasPrefix(line, bullet) {
		return Result{
			Kind:        Bullet,
			Indent:      indent,
			Marker:      bullet,
			Replacement: BulletMark,
			Fragments: []Fragment{{
				Text:  strings.Replace(line, bullet, BulletMark, 1),
				Style: bulletStyle,
			}},
			Container: bulletStyle,
		}
	}

	if numberedRE.MatchString(trimmed) {
		return Result{
			Kind:      Numbered,
			Indent:    indent,
			Fragments: []Fragment{{Text: line, Style: listStyle(indent)}},
			Container: listStyle(indent),
		}
	}

	if fence := CodeFence + NBSP; strings.HasPrefix(line, fence) {
		return Result{
			Kind:   Code,
			Indent: indent,
			Marker: fence,
			Fragments: []Fragment{
				{Text: InputPlaceholder, Placeholder: true},
				{Text: strings.Replace(line, fence, "", 1)},
			},
		}
	}

	if strings.Contains(line, "WARNING") {
		return Result{
			Kind:      Warning,
			Indent:    indent,
			Fragments: []Fragment{{Text: line, Style: warningText}},
			Container: warningContainer,
		}
	}

	return Result{
		Kind:      Paragraph,
		Indent:    indent,
		Fragments: []Fragment{{Text: line}},
	}
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}
