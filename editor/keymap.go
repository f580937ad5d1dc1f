package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	ShiftLeft, ShiftRight key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab, Space key.Binding

	Pill1, Pill2, Pill3, Pill4 key.Binding
	ToggleIME                  key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "line up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "line down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Space:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "no-break space")),

		Pill1: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "pill")),
		Pill2: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "pill")),
		Pill3: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "pill")),
		Pill4: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "pill")),

		// Terminals rarely forward the super key; ctrl+k and alt+k stand in for it.
		ToggleIME: key.NewBinding(key.WithKeys("ctrl+k", "alt+k"), key.WithHelp("ctrl+k", "toggle kana")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func (km KeyMap) pills() [4]key.Binding {
	return [4]key.Binding{km.Pill1, km.Pill2, km.Pill3, km.Pill4}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.ToggleIME, km.Pill1, km.Undo, km.Redo}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.Home, km.End},
		{km.ShiftLeft, km.ShiftRight, km.Backspace, km.Delete},
		{km.Enter, km.Tab, km.Space, km.ToggleIME},
		{km.Pill1, km.Pill2, km.Pill3, km.Pill4},
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste},
	}
}
