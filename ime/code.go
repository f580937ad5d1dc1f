package ime

import (
	"fmt"
	"strings"
	"unicode"
)

// Code names a physical key, independent of layout and modifiers
// ("KeyK", "Digit1", "ShiftLeft", "Enter").
type Code string

const (
	ShiftLeft    Code = "ShiftLeft"
	ShiftRight   Code = "ShiftRight"
	ControlLeft  Code = "ControlLeft"
	ControlRight Code = "ControlRight"
	AltLeft      Code = "AltLeft"
	AltRight     Code = "AltRight"

	Enter      Code = "Enter"
	Space      Code = "Space"
	Tab        Code = "Tab"
	Backspace  Code = "Backspace"
	Delete     Code = "Delete"
	Escape     Code = "Escape"
	ArrowUp    Code = "ArrowUp"
	ArrowDown  Code = "ArrowDown"
	ArrowLeft  Code = "ArrowLeft"
	ArrowRight Code = "ArrowRight"
	F1         Code = "F1"
	F2         Code = "F2"
	F3         Code = "F3"
	F4         Code = "F4"

	Equal Code = "Equal"
	Minus Code = "Minus"
)

// Key returns the code of the letter key for r ("KeyA" for 'a' or 'A').
func Key(r rune) Code {
	return Code("Key" + string(unicode.ToUpper(r)))
}

// Digit returns the code of the digit key for d in 0..9.
func Digit(d int) Code {
	return Code(fmt.Sprintf("Digit%d", d))
}

// shiftedDigits is the JIS layout: Shift+DigitN produces these runes.
var shiftedDigits = map[rune]int{
	'!': 1, '"': 2, '#': 3, '$': 4, '%': 5, '&': 6, '\'': 7, '(': 8, ')': 9,
}

// CodesForRune returns the key codes that type r on a JIS keyboard, with a
// leading ShiftLeft for upper-case letters and shifted digits. It returns nil
// for runes with no physical key mapping.
func CodesForRune(r rune) []Code {
	switch {
	case r >= 'a' && r <= 'z':
		return []Code{Key(r)}
	case r >= 'A' && r <= 'Z':
		return []Code{ShiftLeft, Key(r)}
	case r >= '0' && r <= '9':
		return []Code{Digit(int(r - '0'))}
	case r == '=':
		return []Code{Equal}
	case r == '-':
		return []Code{Minus}
	}
	if d, ok := shiftedDigits[r]; ok {
		return []Code{ShiftLeft, Digit(d)}
	}
	return nil
}

var namedKeys = map[string]Code{
	"enter":     Enter,
	" ":         Space,
	"space":     Space,
	"tab":       Tab,
	"backspace": Backspace,
	"delete":    Delete,
	"esc":       Escape,
	"up":        ArrowUp,
	"down":      ArrowDown,
	"left":      ArrowLeft,
	"right":     ArrowRight,
	"f1":        F1,
	"f2":        F2,
	"f3":        F3,
	"f4":        F4,
}

// CodeForKey maps a terminal key name ("enter", "up", "f1") to its code.
func CodeForKey(name string) (Code, bool) {
	c, ok := namedKeys[strings.ToLower(name)]
	return c, ok
}

// Romaji converts a letter sequence such as "kya" into key codes.
func Romaji(s string) ([]Code, error) {
	if s == "" {
		return nil, fmt.Errorf("ime: empty romaji sequence")
	}
	seq := make([]Code, 0, len(s))
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') {
			return nil, fmt.Errorf("ime: romaji %q: %q is not a letter", s, r)
		}
		seq = append(seq, Key(r))
	}
	return seq, nil
}
