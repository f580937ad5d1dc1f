package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/kanapad/ime"
)

func init() {
	rootCmd.AddCommand(kanaCmd)
}

var kanaCmd = &cobra.Command{
	Use:   "kana",
	Short: "Print the composition table",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings()
		if err != nil {
			return err
		}
		tbl, err := settings.Table()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), kanaTable(tbl))
		return nil
	},
}

func kanaTable(tbl *ime.Table) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("keys", "text")
	for _, e := range tbl.Entries() {
		t.Row(formatSeq(e.Seq), e.Text)
	}
	return t.Render()
}

// formatSeq renders a key sequence compactly: letter keys as lower-case
// letters, other keys by name joined with '+'.
func formatSeq(seq []ime.Code) string {
	var sb strings.Builder
	prevLetter := false
	for i, c := range seq {
		name := string(c)
		letter := strings.HasPrefix(name, "Key") && len(name) == 4
		if i > 0 && !(letter && prevLetter) {
			sb.WriteByte('+')
		}
		if letter {
			sb.WriteString(strings.ToLower(name[3:]))
		} else {
			sb.WriteString(name)
		}
		prevLetter = letter
	}
	return sb.String()
}
