package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/kanapad/classify"
)

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "wrap width")
	rootCmd.AddCommand(previewCmd)
}

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a document as markdown",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings()
		if err != nil {
			return err
		}
		path := settings.File
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return errors.New("preview: no file given")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(previewWidth),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(toMarkdown(string(data)))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// toMarkdown converts document text into markdown. Block markers already use
// markdown syntax once no-break spaces become spaces; consecutive code lines
// are gathered into one fenced block, WARNING lines become quotes and other
// lines keep their breaks.
func toMarkdown(text string) string {
	var sb strings.Builder
	inCode := false
	for _, line := range strings.Split(text, "\n") {
		res := classify.Classify(line)
		if res.Kind == classify.Code {
			if !inCode {
				sb.WriteString("```\n")
				inCode = true
			}
			sb.WriteString(strings.TrimPrefix(line, res.Marker))
			sb.WriteByte('\n')
			continue
		}
		if inCode {
			sb.WriteString("```\n")
			inCode = false
		}

		plain := strings.ReplaceAll(line, classify.NBSP, " ")
		switch res.Kind {
		case classify.Warning:
			sb.WriteString("> " + plain + "\n")
		case classify.Paragraph:
			if strings.TrimSpace(plain) == "" {
				sb.WriteString("\n")
			} else {
				sb.WriteString(plain + "  \n")
			}
		default:
			sb.WriteString(plain + "\n")
		}
	}
	if inCode {
		sb.WriteString("```\n")
	}
	return sb.String()
}
