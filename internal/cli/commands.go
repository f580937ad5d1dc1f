package cli

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kanapad/classify"
	"github.com/iw2rmb/kanapad/editor"
)

// Messages produced by line commands and file operations.
type (
	savedMsg struct {
		path string
		text string
		quit bool
		err  error
	}
	openedMsg struct {
		doc document
		err error
	}
)

func saveCmd(path, text string, quit bool) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{path: path, text: text, quit: quit, err: saveDocument(path, text)}
	}
}

func openCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := openDocument(path)
		return openedMsg{doc: doc, err: err}
	}
}

// lineCommands returns the Enter hooks for doc: ":wq" saves without the
// command line and quits, "ls" lists doc's directory, "vim <name>" opens a
// sibling file.
func lineCommands(doc document) []editor.Command {
	return []editor.Command{
		editor.ExactCommand(":wq", func(ctx editor.CommandContext) tea.Cmd {
			text := textWithoutLine(ctx.State, ctx.State.CurrentLine())
			return saveCmd(doc.path, text, true)
		}),
		editor.ExactCommand("ls", func(ctx editor.CommandContext) tea.Cmd {
			names, err := listDir(doc.dir())
			if err != nil {
				ctx.Logger.Warn("ls", "dir", doc.dir(), "err", err)
				ctx.State.InsertNotice(doc.dir(), " cannot be listed")
				return nil
			}
			ctx.State.InsertListing(names)
			return nil
		}),
		editor.PrefixCommand("vim"+classify.NBSP, func(ctx editor.CommandContext) tea.Cmd {
			name := strings.TrimSpace(ctx.Arg)
			path := name
			if !filepath.IsAbs(path) {
				path = filepath.Join(doc.dir(), name)
			}
			if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
				ctx.State.InsertNotice(name, " is no match found")
				return nil
			}
			return openCmd(path)
		}),
	}
}
