package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/kanapad/config"
	"github.com/iw2rmb/kanapad/editor"
)

// settingsMsg carries a reloaded settings file.
type settingsMsg struct {
	settings config.Settings
	err      error
}

type appKeyMap struct {
	Save, Quit, ToggleIME key.Binding
}

func (k appKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Save, k.Quit, k.ToggleIME} }
func (k appKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultAppKeys() appKeyMap {
	return appKeyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		ToggleIME: editor.DefaultKeyMap().ToggleIME,
	}
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true)
)

// app hosts one editor and the document it edits.
type app struct {
	editor   editor.Model
	settings config.Settings
	doc      document
	// savedText is the content last read from or written to disk.
	savedText string
	status    string

	clip   editor.Clipboard
	keys   appKeyMap
	help   help.Model
	log    *log.Logger
	width  int
	height int
}

func newApp(settings config.Settings, doc document, logger *log.Logger, clip editor.Clipboard) app {
	a := app{
		settings:  settings,
		doc:       doc,
		savedText: doc.text,
		clip:      clip,
		keys:      defaultAppKeys(),
		help:      help.New(),
		log:       logger,
	}
	a.editor = editor.New(a.editorConfig(doc.text))
	return a
}

func (a app) editorConfig(text string) editor.Config {
	table, err := a.settings.Table()
	if err != nil {
		a.log.Warn("kana table", "err", err)
		table = nil
	}
	policy := editor.ScrollAllowManual
	if a.settings.FollowCursor {
		policy = editor.ScrollFollowCursorOnly
	}
	return editor.Config{
		Text:         text,
		ShowLineNums: a.settings.ShowLineNumbers,
		Style:        editor.DefaultStyle(),
		ScrollPolicy: policy,
		HistoryLimit: a.settings.HistoryLimit,
		Table:        table,
		IME:          a.settings.IME,
		Pills:        a.settings.PillLabels(),
		Commands:     lineCommands(a.doc),
		Clipboard:    a.clip,
		Logger:       a.log,
	}
}

// reset replaces the editor, keeping the current size.
func (a *app) reset(text string, ime bool) {
	cfg := a.editorConfig(text)
	cfg.IME = ime
	a.editor = editor.New(cfg).SetSize(a.width, editorHeight(a.height))
}

func (a app) dirty() bool { return a.editor.Text() != a.savedText }

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Save):
			return a, saveCmd(a.doc.path, a.editor.Text(), false)
		}

	case savedMsg:
		if msg.err != nil {
			a.log.Error("save", "file", msg.path, "err", msg.err)
			a.status = "save failed: " + msg.err.Error()
			return a, nil
		}
		a.log.Info("saved", "file", msg.path, "bytes", len(msg.text))
		a.savedText = msg.text
		a.status = "saved " + a.doc.name()
		if msg.quit {
			return a, tea.Quit
		}
		return a, nil

	case openedMsg:
		if msg.err != nil {
			a.log.Error("open", "err", msg.err)
			a.status = msg.err.Error()
			return a, nil
		}
		a.log.Info("opened", "file", msg.doc.path)
		a.doc = msg.doc
		a.savedText = msg.doc.text
		a.reset(msg.doc.text, a.editor.IME())
		a.status = "opened " + a.doc.name()
		return a, nil

	case settingsMsg:
		if msg.err != nil {
			a.log.Warn("reload settings", "err", msg.err)
			a.status = "config: " + msg.err.Error()
			return a, nil
		}
		a.log.Debug("reload settings")
		a.settings = msg.settings
		cur := a.editor.State().Cursor()
		a.reset(a.editor.Text(), a.editor.IME())
		a.editor.State().SetCursor(cur.Line, cur.Col)
		a.editor, _ = a.editor.Update(nil)
		a.status = "settings reloaded"
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.editor.View() + "\n" + a.statusLine()
}

func (a app) statusLine() string {
	name := a.doc.name()
	if a.dirty() {
		name += " +"
	}
	mode := modeStyle.Render(" abc ")
	if a.editor.IME() {
		mode = modeStyle.Render(" かな ")
	}
	pos := a.editor.State().Cursor()
	left := fmt.Sprintf(" %s  %d:%d", name, pos.Line, pos.Col)
	if a.status != "" {
		left += "  " + a.status
	}
	line := mode + statusStyle.Render(left+"  ") + a.help.View(a.keys)
	if a.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(a.width).Render(line)
	}
	return line
}

func editorHeight(h int) int {
	if h <= 1 {
		return 0
	}
	return h - 1
}
