package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type savedMsg struct{}

func TestCommands_RunOnEnterWithLineText(t *testing.T) {
	var got CommandContext
	m := New(Config{
		Commands: []Command{
			ExactCommand("ls", func(ctx CommandContext) tea.Cmd {
				got = ctx
				ctx.State.InsertListing([]string{"a.txt", "b.txt"})
				return func() tea.Msg { return savedMsg{} }
			}),
		},
	})

	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("s"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got.Line != "ls" {
		t.Fatalf("command line: got %q, want %q", got.Line, "ls")
	}
	if cmd == nil {
		t.Fatalf("cmd: got nil, want non-nil")
	}
	if _, ok := cmd().(savedMsg); !ok {
		t.Fatalf("cmd msg: got %T, want savedMsg", cmd())
	}
	if got := m.State().LineCount(); got != 2 {
		t.Fatalf("line count: got %d, want %d", got, 2)
	}
	if got := m.State().LineString(1); got != "ls<div><span>a.txt / </span><span>b.txt / </span></div>" {
		t.Fatalf("line 1: got %q", got)
	}
}

func TestCommands_PrefixPassesArgument(t *testing.T) {
	var arg string
	m := New(Config{
		Text: "vim\u00a0notes.txt",
		Commands: []Command{
			ExactCommand("vim", func(CommandContext) tea.Cmd {
				t.Fatalf("exact command should not match")
				return nil
			}),
			PrefixCommand("vim\u00a0", func(ctx CommandContext) tea.Cmd {
				arg = ctx.Arg
				return nil
			}),
		},
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if arg != "notes.txt" {
		t.Fatalf("arg: got %q, want %q", arg, "notes.txt")
	}
}

func TestCommands_FirstMatchWins(t *testing.T) {
	var ran []string
	record := func(name string) func(CommandContext) tea.Cmd {
		return func(CommandContext) tea.Cmd {
			ran = append(ran, name)
			return nil
		}
	}
	m := New(Config{
		Text: "go",
		Commands: []Command{
			{Name: "nil match", Run: record("nil")},
			PrefixCommand("g", record("prefix")),
			ExactCommand("go", record("exact")),
		},
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(ran) != 1 || ran[0] != "prefix" {
		t.Fatalf("ran=%v, want [prefix]", ran)
	}
}

func TestCommands_SkippedInIMEMode(t *testing.T) {
	ran := false
	m := New(Config{
		Text: "ls",
		IME:  true,
		Commands: []Command{
			ExactCommand("ls", func(CommandContext) tea.Cmd {
				ran = true
				return nil
			}),
		},
	})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if ran {
		t.Fatalf("command ran in IME mode")
	}
}
