package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/kanapad/buffer"
)

// CommandContext is passed to a Command when it runs.
type CommandContext struct {
	// Line is the text of the caret's line up to the caret, taken before the
	// newline is inserted.
	Line string
	// Arg is the part of Line after the command prefix, if any.
	Arg string

	State  *buffer.State
	Logger *log.Logger
}

// Command is a hook run on Enter. Run may mutate State (for instance to insert
// a listing widget) and may return a command for the Bubble Tea runtime.
type Command struct {
	Name  string
	Match func(line string) (arg string, ok bool)
	Run   func(ctx CommandContext) tea.Cmd
}

// ExactCommand matches lines equal to name.
func ExactCommand(name string, run func(CommandContext) tea.Cmd) Command {
	return Command{
		Name: name,
		Match: func(line string) (string, bool) {
			return "", line == name
		},
		Run: run,
	}
}

// PrefixCommand matches lines starting with prefix and passes the remainder
// as Arg.
func PrefixCommand(prefix string, run func(CommandContext) tea.Cmd) Command {
	return Command{
		Name: strings.TrimSpace(prefix),
		Match: func(line string) (string, bool) {
			return strings.CutPrefix(line, prefix)
		},
		Run: run,
	}
}

func (m *Model) runCommands(line string) tea.Cmd {
	for _, c := range m.cfg.Commands {
		if c.Match == nil || c.Run == nil {
			continue
		}
		arg, ok := c.Match(line)
		if !ok {
			continue
		}
		m.log.Debug("command", "name", c.Name, "arg", arg)
		return c.Run(CommandContext{
			Line:   line,
			Arg:    arg,
			State:  m.state,
			Logger: m.log,
		})
	}
	return nil
}
